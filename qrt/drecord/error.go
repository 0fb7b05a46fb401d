package drecord

import (
	"fmt"
)

type (
	ErrDecodeRecord struct {
		Offset int64
		Cause  error
	}
)

func (r ErrDecodeRecord) Error() string {
	return fmt.Sprintf("decode record at offset %d: %v", r.Offset, r.Cause)
}

func (r ErrDecodeRecord) Unwrap() error {
	return r.Cause
}
