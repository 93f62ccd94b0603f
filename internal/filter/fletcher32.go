package filter

import (
	"encoding/binary"
	"fmt"

	binpkg "github.com/robert-malhotra/go-pngme/internal/binary"
)

// Fletcher32Filter appends a Fletcher-32 checksum on encode and verifies
// and strips it on decode.
type Fletcher32Filter struct{}

// NewFletcher32 creates a new Fletcher-32 filter.
func NewFletcher32() *Fletcher32Filter {
	return &Fletcher32Filter{}
}

func (f *Fletcher32Filter) ID() uint8 {
	return IDFletcher32
}

func (f *Fletcher32Filter) Name() string {
	return "fletcher32"
}

func (f *Fletcher32Filter) Encode(input []byte) ([]byte, error) {
	out := make([]byte, len(input), len(input)+4)
	copy(out, input)
	return binary.BigEndian.AppendUint32(out, binpkg.Fletcher32(input)), nil
}

// Decode verifies the checksum stored in the last 4 bytes of the input and
// returns the data without it.
func (f *Fletcher32Filter) Decode(input []byte, size int) ([]byte, error) {
	if len(input) < 4 {
		return nil, fmt.Errorf("fletcher32: input too short for checksum")
	}
	if len(input)-4 > size {
		return nil, fmt.Errorf("%w: fletcher32 holds %d bytes, expected %d", ErrOutputTooLarge, len(input)-4, size)
	}

	data := input[:len(input)-4]
	stored := binary.BigEndian.Uint32(input[len(input)-4:])

	if !binpkg.VerifyFletcher32(data, stored) {
		return nil, fmt.Errorf("%w: fletcher32 stored=0x%08x, computed=0x%08x",
			ErrChecksumMismatch, stored, binpkg.Fletcher32(data))
	}

	return data, nil
}
