package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
		source: bytes.NewReader(bs),
		size:   int64(len(bs)),
	}
}

// OpenFile opens path for random access. The caller owns the handle and must
// Close the reader.
func OpenFile(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, `OpenFile error opening "%s"`, path)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrapf(err, `OpenFile error reading size of "%s"`, path)
	}
	return &Reader{
		source: file,
		closer: file,
		size:   info.Size(),
	}, nil
}

func (b *Reader) Size() int64 {
	return b.size
}

// Close releases the underlying file, if any. It is safe to call twice.
func (b *Reader) Close() error {
	if b.closer == nil {
		return nil
	}
	err := b.closer.Close()
	b.closer = nil
	return err
}

// ReadAt returns exactly length bytes starting at offset.
func (b *Reader) ReadAt(offset int64, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset > b.size || int64(length) > b.size-offset {
		return nil, ErrTruncatedRead{Offset: offset, Length: length, Size: b.size}
	}
	bs := make([]byte, length)
	if length == 0 {
		return bs, nil
	}
	n, err := b.source.ReadAt(bs, offset)
	if n < length {
		if err == nil || err == io.EOF {
			return nil, ErrTruncatedRead{Offset: offset, Length: length, Size: b.size}
		}
		return nil, errors.Wrapf(err, "ReadAt error at offset %d", offset)
	}
	return bs, nil
}

// ReadSection returns a sequential reader over exactly length bytes at offset.
func (b *Reader) ReadSection(offset int64, length int) (*Reader, error) {
	bs, err := b.ReadAt(offset, length)
	if err != nil {
		return nil, err
	}
	return NewBytesReader(bs), nil
}

func (b *Reader) ReadUInt32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadInt16() (int16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(bs)), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	offset := b.Reader.Size() - int64(b.Len())
	read, err := io.ReadFull(&b.Reader, bs)
	if err != nil {
		if read < n {
			return nil, ErrTruncatedRead{Offset: offset, Length: n, Size: b.Reader.Size()}
		}
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}
