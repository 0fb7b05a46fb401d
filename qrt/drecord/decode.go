package drecord

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
	"qrt2csv/qrt/lbytes"
)

func Decode(reader *lbytes.Reader, offset int64) (*Record, error) {
	bs, err := reader.ReadAt(offset, DefaultRecordSize)
	if err != nil {
		return nil, ErrDecodeRecord{Offset: offset, Cause: err}
	}
	record := Record{}
	if err := binary.Read(bytes.NewReader(bs), binary.LittleEndian, &record); err != nil {
		err := errors.Wrap(err, "drecord.Decode error")
		return nil, ErrDecodeRecord{Offset: offset, Cause: err}
	}
	return &record, nil
}
