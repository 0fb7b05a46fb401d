package dheader

import (
	"qrt2csv/qrt/lbytes"
)

func Decode(reader *lbytes.Reader) (*Header, error) {
	section, err := reader.ReadSection(0, DefaultHeaderSize)
	if err != nil {
		return nil, ErrDecodeHeader{Cause: err}
	}

	read4Bytes := lbytes.CreateNBytesReadFunction(section, 4)
	read12Bytes := lbytes.CreateNBytesReadFunction(section, 12)
	readUInt32 := lbytes.CreateUInt32ReadFunction(section)

	headerInstructions := []lbytes.Instruction{
		{Key: "unknown_1", ReadFunction: read12Bytes},
		{Key: "record_size", ReadFunction: readUInt32},
		{Key: "unknown_2", ReadFunction: read4Bytes},
		{Key: "record_table_offset", ReadFunction: readUInt32},
		{Key: "unknown_3", ReadFunction: read4Bytes},
		{Key: "instrument_count", ReadFunction: readUInt32},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, ErrDecodeHeader{Cause: err}
	}

	return header, nil
}
