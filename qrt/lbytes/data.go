package lbytes

import (
	"bytes"
	"io"
)

type (
	// Reader gives exact-length, random-access reads over a fixed-size blob.
	// It also keeps a cursor for the sequential Read* helpers.
	Reader struct {
		bytes.Reader
		source io.ReaderAt
		closer io.Closer
		size   int64
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
