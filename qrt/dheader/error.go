package dheader

type (
	ErrDecodeHeader struct {
		Cause error
	}
)

func (r ErrDecodeHeader) Error() string {
	return "decode header: " + r.Cause.Error()
}

func (r ErrDecodeHeader) Unwrap() error {
	return r.Cause
}
