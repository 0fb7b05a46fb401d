package ddirectory

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"qrt2csv/qrt/lbytes"
)

func EntryOffset(index int, descriptorSize int) int64 {
	return BlockOffset + int64(index)*int64(descriptorSize)
}

func DecodeEntry(reader *lbytes.Reader, offset int64, descriptorSize int) (*Entry, error) {
	section, err := reader.ReadSection(offset, descriptorSize)
	if err != nil {
		return nil, err
	}

	readSymbol := lbytes.CreateStringReadFunction(section, SymbolLength)
	read3Bytes := lbytes.CreateNBytesReadFunction(section, RecordCountOffset-SymbolLength)
	readUInt32 := lbytes.CreateUInt32ReadFunction(section)
	readStockPositions := lbytes.CreateInt16SliceReadFunction(section, NumStockPositions)

	instructions := []lbytes.Instruction{
		{Key: "symbol", ReadFunction: readSymbol},
		{Key: "unknown_1", ReadFunction: read3Bytes},
		{Key: "record_count", ReadFunction: readUInt32},
		{Key: "stock_positions", ReadFunction: readStockPositions},
	}
	entry, err := lbytes.ExecuteInstructions[Entry](instructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEntry error")
		return nil, err
	}

	return entry, nil
}

func DecodeBlock(reader *lbytes.Reader, descriptorSize int, numEntries uint32) ([]Entry, error) {
	// numEntries comes straight from the header and may be garbage,
	// so the capacity is bounded by what the file can hold
	maxEntries := (reader.Size() - BlockOffset) / int64(descriptorSize)
	capacity := lo.Max([]int64{0, lo.Min([]int64{int64(numEntries), maxEntries})})
	entries := make([]Entry, 0, capacity)
	for i := 0; i < int(numEntries); i++ {
		entry, err := DecodeEntry(reader, EntryOffset(i, descriptorSize), descriptorSize)
		if err != nil {
			return nil, ErrDecodeDirectory{Index: i, Cause: err}
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}
