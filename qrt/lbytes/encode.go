package lbytes

import (
	"encoding/binary"
)

func EncodeValueUInt32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func EncodeValueInt16(value int16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, uint16(value))
	return bs
}

// EncodeValueString lays out s in exactly n bytes, zero padded on the right.
// Longer strings are cut.
func EncodeValueString(s string, n int) []byte {
	bs := make([]byte, n)
	copy(bs, s)
	return bs
}
