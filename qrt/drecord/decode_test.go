package drecord

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"qrt2csv/qrt/lbytes"
)

func TestRecordSize(t *testing.T) {
	assert.Equal(t, DefaultRecordSize, binary.Size(Record{}))
}

func TestDecode_Layout(t *testing.T) {
	bs := make([]byte, 4, 4+DefaultRecordSize)
	bs = append(bs, lbytes.EncodeValueUInt32(1401271200)...)
	bs = append(bs, lbytes.EncodeValueUInt32(math.Float32bits(100.5))...)
	bs = append(bs, lbytes.EncodeValueUInt32(math.Float32bits(12345))...)
	bs = append(bs, lbytes.EncodeValueUInt32(math.Float32bits(1234567.5))...)
	for _, v := range []int16{11, 12, 13, 21, 22, 23} {
		bs = append(bs, lbytes.EncodeValueInt16(v)...)
	}
	bs = append(bs, 1, 2, 3, 4, 5, 6)
	bs = append(bs, 0xEF, 0xBE)

	record, err := Decode(lbytes.NewBytesReader(bs), 4)
	require.NoError(t, err)
	assert.Equal(
		t,
		Record{
			EpochSeconds:         1401271200,
			LastPrice:            100.5,
			TotalVolumeToday:     12345,
			TotalTradeMoneyToday: 1234567.5,
			BuyVolumes:           [3]uint16{11, 12, 13},
			SellVolumes:          [3]uint16{21, 22, 23},
			BuyPrices:            [3]uint8{1, 2, 3},
			SellPrices:           [3]uint8{4, 5, 6},
			Reserved:             0xBEEF,
		},
		*record,
	)
	assert.Equal(t, bs[4:], Encode(*record))
}

func TestDecode_Truncated(t *testing.T) {
	reader := lbytes.NewBytesReader(make([]byte, DefaultRecordSize+10))

	_, err := Decode(reader, 11)

	var decodeErr ErrDecodeRecord
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, int64(11), decodeErr.Offset)
	var truncated lbytes.ErrTruncatedRead
	assert.True(t, errors.As(err, &truncated))
}

func TestRecord_Row(t *testing.T) {
	record := Record{
		EpochSeconds:         1401271200,
		LastPrice:            100.5,
		TotalVolumeToday:     12345,
		TotalTradeMoneyToday: 1234567.5,
		BuyVolumes:           [3]uint16{7, 8, 9},
		SellVolumes:          [3]uint16{3, 2, 1},
		BuyPrices:            [3]uint8{250, 1, 1},
		SellPrices:           [3]uint8{2, 1, 1},
	}
	assert.Equal(t, "2014-05-28-10-00-00,   100.5,12345, 1234568,7,3,250,2", record.Row())

	record = Record{EpochSeconds: 1401271203, LastPrice: 101}
	assert.Equal(t, "2014-05-28-10-00-03,   101.0,   0,       0,0,0,0,0", record.Row())
}

func TestHeader(t *testing.T) {
	assert.Equal(
		t,
		"time,new_price,vol_today,ammount,buy_vol,sell_vol,buy_price(relative),sell_price(relative)",
		Header(),
	)
}
