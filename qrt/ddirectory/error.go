package ddirectory

import (
	"fmt"
)

type (
	ErrDecodeDirectory struct {
		Index int
		Cause error
	}
)

func (r ErrDecodeDirectory) Error() string {
	return fmt.Sprintf("decode directory entry %d: %v", r.Index, r.Cause)
}

func (r ErrDecodeDirectory) Unwrap() error {
	return r.Cause
}
