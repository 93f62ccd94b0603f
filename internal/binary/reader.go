// Package binary provides low-level binary I/O for PNG chunk parsing.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a read runs past the end of the data.
var ErrShortBuffer = errors.New("short buffer")

// Reader is a cursor over an immutable byte view. Reads return subslices
// of the underlying data and never copy.
type Reader struct {
	data  []byte
	order binary.ByteOrder
	pos   int
}

// Config holds reader and writer configuration.
type Config struct {
	ByteOrder binary.ByteOrder
}

// DefaultConfig returns the configuration used by the PNG container:
// network (big-endian) byte order throughout.
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.BigEndian,
	}
}

// NewReader creates a reader over data positioned at offset 0.
func NewReader(data []byte, cfg Config) *Reader {
	return &Reader{
		data:  data,
		order: cfg.ByteOrder,
		pos:   0,
	}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// ReadBytes returns the next n bytes as a subslice and advances.
// Callers that retain the result beyond the lifetime of the data must copy it.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf, err := r.Peek(n)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return buf, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// Peek returns the next n bytes without advancing the position.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	if r.pos < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrShortBuffer, n, r.pos, r.Remaining())
	}
	return r.data[r.pos : r.pos+n : r.pos+n], nil
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int) {
	r.pos += n
}

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}
