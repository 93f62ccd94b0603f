package filter

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoder is shared across calls; it is safe for concurrent use.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("filter: zstd encoder initialization failed: " + err.Error())
	}
}

// Zstd implements Zstandard compression.
type Zstd struct{}

// NewZstd creates a new zstd filter.
func NewZstd() *Zstd {
	return &Zstd{}
}

func (f *Zstd) ID() uint8 {
	return IDZstd
}

func (f *Zstd) Name() string {
	return "zstd"
}

func (f *Zstd) Encode(input []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(input, nil), nil
}

// zstdMemoryFloor is the smallest decoder memory cap. Frames always
// carry a window of at least zstd.MinWindowSize, so a cap at a tiny
// recorded size would reject valid short messages.
const zstdMemoryFloor = 1 << 20

// Decode uses a decoder capped near the recorded size. The cap also
// limits the window a frame header may request, so a frame claiming a
// large window or content size is rejected before it is inflated.
func (f *Zstd) Decode(input []byte, size int) ([]byte, error) {
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(uint64(max(size, zstdMemoryFloor))+1),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	defer decoder.Close()

	output, err := decoder.DecodeAll(input, make([]byte, 0, min(size, decodePrealloc)))
	switch {
	case errors.Is(err, zstd.ErrDecoderSizeExceeded), errors.Is(err, zstd.ErrWindowSizeExceeded):
		return nil, fmt.Errorf("%w: zstd: more than %d bytes: %v", ErrOutputTooLarge, size, err)
	case err != nil:
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(output) > size {
		return nil, fmt.Errorf("%w: zstd produced %d bytes, expected %d", ErrOutputTooLarge, len(output), size)
	}
	return output, nil
}
