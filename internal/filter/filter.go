package filter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Filter IDs as stored in envelopes. Changing them breaks existing files.
const (
	IDDeflate    uint8 = 1
	IDFletcher32 uint8 = 3
	IDZstd       uint8 = 32
	IDLZ4        uint8 = 33
)

// Errors
var (
	ErrUnknownFilter    = errors.New("unknown filter")
	ErrNotEnvelope      = errors.New("payload is not a filter envelope")
	ErrCorruptEnvelope  = errors.New("corrupt filter envelope")
	ErrChecksumMismatch = errors.New("filter checksum mismatch")
	ErrOutputTooLarge   = errors.New("filter output exceeds recorded size")
)

// MaxDecodedSize bounds the recorded input length of any stage. Envelopes
// come from untrusted files, so a stage may not claim more than this.
const MaxDecodedSize = 64 << 20

// decodePrealloc caps the buffer reserved up front for a decoded stage.
const decodePrealloc = 1 << 20

// Filter is the interface implemented by all message filters.
type Filter interface {
	// ID returns the filter identifier stored in envelopes.
	ID() uint8

	// Name returns the filter name used in configuration and flags.
	Name() string

	// Encode transforms data to its filtered form.
	Encode(input []byte) ([]byte, error)

	// Decode reverses Encode. size is the length Encode was given; a
	// filter stops with ErrOutputTooLarge as soon as its output passes it.
	Decode(input []byte, size int) ([]byte, error)
}

// Registry maps filter IDs to filter constructors.
var Registry = map[uint8]func() Filter{
	IDDeflate:    func() Filter { return NewDeflate(DefaultDeflateLevel) },
	IDFletcher32: func() Filter { return NewFletcher32() },
	IDZstd:       func() Filter { return NewZstd() },
	IDLZ4:        func() Filter { return NewLZ4() },
}

// filterIDs maps filter names to IDs.
var filterIDs = map[string]uint8{
	"deflate":    IDDeflate,
	"fletcher32": IDFletcher32,
	"zstd":       IDZstd,
	"lz4":        IDLZ4,
}

// New creates a filter from its ID.
func New(id uint8) (Filter, error) {
	constructor, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: ID %d", ErrUnknownFilter, id)
	}
	return constructor(), nil
}

// Lookup creates a filter from its name.
func Lookup(name string) (Filter, error) {
	id, ok := filterIDs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownFilter, name, Names())
	}
	return New(id)
}

// Names returns the known filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(filterIDs))
	for name := range filterIDs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// readLimited reads r until EOF, failing once more than size bytes have
// been produced.
func readLimited(r io.Reader, size int) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, min(size, decodePrealloc)))
	n, err := buf.ReadFrom(io.LimitReader(r, int64(size)+1))
	if err != nil {
		return nil, err
	}
	if n > int64(size) {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrOutputTooLarge, size)
	}
	return buf.Bytes(), nil
}
