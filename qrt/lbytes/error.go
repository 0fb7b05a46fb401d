package lbytes

import (
	"fmt"
)

type (
	ErrTruncatedRead struct {
		Offset int64
		Length int
		Size   int64
	}
)

func (r ErrTruncatedRead) Error() string {
	return fmt.Sprintf(
		"truncated read: wanted %d bytes at offset %d, source has %d bytes",
		r.Length, r.Offset, r.Size,
	)
}
