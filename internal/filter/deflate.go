package filter

import (
	"bytes"
	"compress/zlib"
	"fmt"
)

// DefaultDeflateLevel is the zlib compression level used by the registry.
const DefaultDeflateLevel = 6

// Deflate implements the DEFLATE filter (zlib stream).
type Deflate struct {
	level int
}

// NewDeflate creates a new DEFLATE filter. Levels outside 0-9 fall back to
// the default.
func NewDeflate(level int) *Deflate {
	if level < zlib.NoCompression || level > zlib.BestCompression {
		level = DefaultDeflateLevel
	}
	return &Deflate{level: level}
}

func (f *Deflate) ID() uint8 {
	return IDDeflate
}

func (f *Deflate) Name() string {
	return "deflate"
}

func (f *Deflate) Encode(input []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, f.level)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := w.Write(input); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *Deflate) Decode(input []byte, size int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer r.Close()

	output, err := readLimited(r, size)
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}

	return output, nil
}
