package buffer

import (
	"fmt"
	"io"
	"os"
)

// RowSize is the number of bytes shown on one grid row.
const RowSize = 16

// Buffer holds the contents of the inspected file. It is loaded once and
// never mutated afterwards.
type Buffer struct {
	filename string
	data     []byte
}

func Open(filename string) (*Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	return &Buffer{
		filename: filename,
		data:     data,
	}, nil
}

// FromBytes wraps a copy of data in a Buffer with the given name.
func FromBytes(filename string, data []byte) *Buffer {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Buffer{
		filename: filename,
		data:     cp,
	}
}

func (b *Buffer) Filename() string {
	return b.filename
}

func (b *Buffer) Size() int {
	return len(b.data)
}

// Data returns the underlying bytes. Callers must not modify them.
func (b *Buffer) Data() []byte {
	return b.data
}

func (b *Buffer) GetByte(offset int) (byte, bool) {
	if offset < 0 || offset >= len(b.data) {
		return 0, false
	}
	return b.data[offset], true
}

// LastRowOffset is the offset of the last row that starts inside the
// buffer, or of the empty row just past it when the size is a multiple
// of RowSize.
func (b *Buffer) LastRowOffset() int {
	return RowSize * (len(b.data) / RowSize)
}
