package dheader

import (
	"qrt2csv/qrt/lbytes"
)

func padded(bs []byte, n int) []byte {
	result := make([]byte, n)
	copy(result, bs)
	return result
}

func Encode(header Header) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, padded(header.Unknown1, 12)...)
	bs = append(bs, lbytes.EncodeValueUInt32(header.RecordSize)...)
	bs = append(bs, padded(header.Unknown2, 4)...)
	bs = append(bs, lbytes.EncodeValueUInt32(header.RecordTableOffset)...)
	bs = append(bs, padded(header.Unknown3, 4)...)
	bs = append(bs, lbytes.EncodeValueUInt32(header.InstrumentCount)...)
	return bs
}
