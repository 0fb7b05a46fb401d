package ddirectory

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"qrt2csv/qrt/lbytes"
)

func createEntry(symbol string, recordCount uint32, positions ...int16) Entry {
	stockPositions := lo.Times(NumStockPositions, func(_ int) int16 { return PagePresentNone })
	copy(stockPositions, positions)
	return Entry{
		Symbol:         symbol,
		Unknown1:       []byte{0, 0, 0},
		RecordCount:    recordCount,
		StockPositions: stockPositions,
	}
}

func withPreamble(bs []byte) []byte {
	return append(make([]byte, BlockOffset), bs...)
}

func TestStockPositionOffsets(t *testing.T) {
	require.Len(t, StockPositionOffsets, NumStockPositions)
	assert.Equal(t, 14, StockPositionOffsets[0])
	assert.Equal(t, 78, StockPositionOffsets[NumStockPositions-1])
}

func TestDecodeBlock(t *testing.T) {
	for _, descriptorSize := range []int{DescriptorSizeUnaligned, DescriptorSizeAligned} {
		entries := []Entry{
			createEntry("IF1406", 3, 0, 1),
			createEntry("", 0),
			createEntry("TF1409X", 250, 4),
		}
		reader := lbytes.NewBytesReader(withPreamble(EncodeBlock(entries, descriptorSize)))

		decoded, err := DecodeBlock(reader, descriptorSize, uint32(len(entries)))
		require.NoError(t, err)
		assert.Equal(t, entries, decoded)
	}
}

func TestDecodeEntry_Layout(t *testing.T) {
	bs := make([]byte, DescriptorSizeUnaligned)
	copy(bs, "AB\u0000C\u0000\u0000\u0000")
	copy(bs[RecordCountOffset:], lbytes.EncodeValueUInt32(42))
	copy(bs[14:], []byte{0xFF, 0xFF, 0x02, 0x00})
	copy(bs[78:], []byte{0x07, 0x00})

	entry, err := DecodeEntry(lbytes.NewBytesReader(bs), 0, DescriptorSizeUnaligned)
	require.NoError(t, err)
	// embedded zero bytes are kept, only the trailing padding goes
	assert.Equal(t, "AB\u0000C", entry.Symbol)
	assert.Equal(t, uint32(42), entry.RecordCount)
	require.Len(t, entry.StockPositions, NumStockPositions)
	assert.Equal(t, PagePresentNone, entry.StockPositions[0])
	assert.Equal(t, int16(2), entry.StockPositions[1])
	assert.Equal(t, int16(7), entry.StockPositions[32])
}

func TestDecodeBlock_Truncated(t *testing.T) {
	entries := []Entry{createEntry("A", 1, 0), createEntry("B", 1, 0)}
	bs := withPreamble(EncodeBlock(entries, DescriptorSizeAligned))
	reader := lbytes.NewBytesReader(bs[:len(bs)-1])

	_, err := DecodeBlock(reader, DescriptorSizeAligned, 2)

	var decodeErr ErrDecodeDirectory
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 1, decodeErr.Index)
	var truncated lbytes.ErrTruncatedRead
	assert.True(t, errors.As(err, &truncated))
}

func TestDecodeBlock_GarbageCount(t *testing.T) {
	reader := lbytes.NewBytesReader(withPreamble(EncodeEntry(createEntry("A", 1, 0), DescriptorSizeUnaligned)))

	_, err := DecodeBlock(reader, DescriptorSizeUnaligned, 0xFFFFFFFF)

	var decodeErr ErrDecodeDirectory
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 1, decodeErr.Index)
}

func TestDecodeBlock_Empty(t *testing.T) {
	entries, err := DecodeBlock(lbytes.NewBytesReader(nil), DescriptorSizeUnaligned, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
