package filter

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// LZ4 implements LZ4 compression using the LZ4 frame format, which stores
// incompressible input verbatim rather than failing.
type LZ4 struct{}

// NewLZ4 creates a new LZ4 filter.
func NewLZ4() *LZ4 {
	return &LZ4{}
}

func (f *LZ4) ID() uint8 {
	return IDLZ4
}

func (f *LZ4) Name() string {
	return "lz4"
}

func (f *LZ4) Encode(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(input); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *LZ4) Decode(input []byte, size int) ([]byte, error) {
	output, err := readLimited(lz4.NewReader(bytes.NewReader(input)), size)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	return output, nil
}
