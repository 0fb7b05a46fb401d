package drecord

import (
	"bytes"
	"encoding/binary"
)

func Encode(record Record) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, DefaultRecordSize))
	// writing a fixed-size struct into a bytes.Buffer cannot fail
	_ = binary.Write(buf, binary.LittleEndian, record)
	return buf.Bytes()
}
