// Package qrttest builds synthetic QRT files for tests.
package qrttest

import (
	"github.com/samber/lo"
	"qrt2csv/qrt/ddirectory"
	"qrt2csv/qrt/dheader"
	"qrt2csv/qrt/drecord"
)

type (
	Builder struct {
		Header         dheader.Header
		Entries        []ddirectory.Entry
		DescriptorSize int
		records        map[int64]drecord.Record
	}
)

func NewBuilder(recordSize uint32, recordTableOffset uint32, descriptorSize int) *Builder {
	return &Builder{
		Header: dheader.Header{
			RecordSize:        recordSize,
			RecordTableOffset: recordTableOffset,
		},
		DescriptorSize: descriptorSize,
		records:        map[int64]drecord.Record{},
	}
}

// Positions returns a full position table whose first entries are given.
// The rest are marked absent.
func Positions(positions ...int16) []int16 {
	result := lo.Times(ddirectory.NumStockPositions, func(_ int) int16 {
		return ddirectory.PagePresentNone
	})
	copy(result, positions)
	return result
}

func (b *Builder) AddEntry(symbol string, recordCount uint32, positions []int16) *Builder {
	b.Entries = append(b.Entries, ddirectory.Entry{
		Symbol:         symbol,
		Unknown1:       []byte{0, 0, 0},
		RecordCount:    recordCount,
		StockPositions: positions,
	})
	b.Header.InstrumentCount = uint32(len(b.Entries))
	return b
}

// PutRecord places record in slot `slot` of page `page` of the record table.
func (b *Builder) PutRecord(page int16, slot uint32, record drecord.Record) *Builder {
	offset := int64(page)*int64(b.Header.RecordSize)*drecord.DefaultRecordSize +
		int64(b.Header.RecordTableOffset) +
		int64(slot)*drecord.DefaultRecordSize
	b.records[offset] = record
	return b
}

// Bytes lays out header, directory and records. Records are written last, so
// they win where they overlap directory padding.
func (b *Builder) Bytes() []byte {
	directory := ddirectory.EncodeBlock(b.Entries, b.DescriptorSize)
	size := int64(dheader.DefaultHeaderSize + ddirectory.CalculateBlockLength(len(b.Entries), b.DescriptorSize))
	for offset := range b.records {
		size = lo.Max([]int64{size, offset + drecord.DefaultRecordSize})
	}

	bs := make([]byte, size)
	copy(bs, dheader.Encode(b.Header))
	copy(bs[dheader.DefaultHeaderSize:], directory)
	for offset, record := range b.records {
		copy(bs[offset:], drecord.Encode(record))
	}
	return bs
}
