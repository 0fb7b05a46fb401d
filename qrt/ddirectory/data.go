package ddirectory

import (
	"qrt2csv/ds"
)

type (
	// Entry describes one instrument slot of the directory that follows the
	// file header.
	Entry struct {
		Symbol      string `json:"symbol"`
		Unknown1    []byte `json:"unknown_1"`
		RecordCount uint32 `json:"record_count"`
		// StockPositions maps a page of records to its index in the record
		// table. -1 (0xFFFF on disk) means the page is absent.
		StockPositions []int16 `json:"stock_positions"`
	}
)

const (
	// DescriptorSizeUnaligned and DescriptorSizeAligned are the two slot
	// sizes produced by the packed and the padded builds of the writer.
	DescriptorSizeUnaligned = 254
	DescriptorSizeAligned   = 252

	BlockOffset       = 0x20
	SymbolLength      = 7
	RecordCountOffset = 10
	NumStockPositions = 33
	PagePresentNone   = int16(-1)
)

// StockPositionOffsets are the offsets of the position table inside a slot.
var StockPositionOffsets = ds.MakeRange(14, 14+2*NumStockPositions, 2)
