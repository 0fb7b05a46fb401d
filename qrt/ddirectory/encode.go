package ddirectory

import (
	"qrt2csv/qrt/lbytes"
)

// EncodeEntry lays entry out in a slot of descriptorSize bytes.
func EncodeEntry(entry Entry, descriptorSize int) []byte {
	bs := make([]byte, descriptorSize)
	copy(bs, lbytes.EncodeValueString(entry.Symbol, SymbolLength))
	copy(bs[SymbolLength:RecordCountOffset], entry.Unknown1)
	copy(bs[RecordCountOffset:], lbytes.EncodeValueUInt32(entry.RecordCount))
	for i, offset := range StockPositionOffsets {
		position := PagePresentNone
		if i < len(entry.StockPositions) {
			position = entry.StockPositions[i]
		}
		copy(bs[offset:], lbytes.EncodeValueInt16(position))
	}
	return bs
}

func EncodeBlock(entries []Entry, descriptorSize int) []byte {
	bs := make([]byte, 0, len(entries)*descriptorSize)
	for _, entry := range entries {
		bs = append(bs, EncodeEntry(entry, descriptorSize)...)
	}
	return bs
}

func CalculateBlockLength(numEntries int, descriptorSize int) int {
	return numEntries * descriptorSize
}
