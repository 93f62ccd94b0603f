package png

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	binpkg "github.com/robert-malhotra/go-pngme/internal/binary"
)

// Chunk framing sizes.
const (
	lengthFieldSize = 4
	typeFieldSize   = 4
	crcFieldSize    = 4

	// ChunkOverhead is the number of framing bytes around a payload:
	// length, type code and CRC.
	ChunkOverhead = lengthFieldSize + typeFieldSize + crcFieldSize
)

// Chunk is one length + type + payload + CRC record. Chunks are immutable:
// the payload is copied in on construction and copied out by Data.
type Chunk struct {
	typ  TypeCode
	data []byte
	crc  uint32
}

// NewChunk builds a chunk from a type code and payload, computing its CRC.
func NewChunk(t TypeCode, data []byte) *Chunk {
	data = bytes.Clone(data)
	return &Chunk{
		typ:  t,
		data: data,
		crc:  binpkg.CRC32(t[:], data),
	}
}

// ParseChunk decodes exactly one chunk. b must hold the whole record and
// nothing else: 4-byte big-endian length, type code, payload, 4-byte CRC.
// The stored CRC is verified against the type code and payload.
//
// Offsets in returned errors are relative to the start of b.
func ParseChunk(b []byte) (*Chunk, error) {
	if len(b) < ChunkOverhead {
		return nil, &Error{
			Kind:     KindMalformedChunk,
			Offset:   0,
			Expected: ChunkOverhead,
			Actual:   uint64(len(b)),
			Message:  fmt.Sprintf("%d bytes is shorter than the %d-byte chunk framing", len(b), ChunkOverhead),
		}
	}

	r := binpkg.NewReader(b, binpkg.DefaultConfig())

	// Reads below cannot fail once the declared length matches len(b).
	length, _ := r.ReadUint32()
	if uint64(length)+ChunkOverhead != uint64(len(b)) {
		return nil, &Error{
			Kind:     KindMalformedChunk,
			Offset:   0,
			Expected: uint64(length) + ChunkOverhead,
			Actual:   uint64(len(b)),
			Message:  fmt.Sprintf("declared length %d does not match record size %d", length, len(b)),
		}
	}

	raw, _ := r.ReadBytes(typeFieldSize)
	t, err := TypeCodeFromBytes([4]byte(raw))
	if err != nil {
		return nil, atOffset(err, lengthFieldSize)
	}

	data, _ := r.ReadBytes(int(length))
	crcOffset := r.Pos()
	stored, _ := r.ReadUint32()

	if computed := binpkg.CRC32(raw, data); computed != stored {
		return nil, &Error{
			Kind:     KindChecksumMismatch,
			Offset:   crcOffset,
			Type:     t.String(),
			Expected: uint64(computed),
			Actual:   uint64(stored),
			Message:  fmt.Sprintf("stored 0x%08x, computed 0x%08x", stored, computed),
		}
	}

	return &Chunk{
		typ:  t,
		data: bytes.Clone(data),
		crc:  stored,
	}, nil
}

// Type returns the chunk type code.
func (c *Chunk) Type() TypeCode {
	return c.typ
}

// Length returns the payload length, the value of the length field.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Size returns the encoded size of the chunk including framing.
func (c *Chunk) Size() int {
	return len(c.data) + ChunkOverhead
}

// Data returns a copy of the payload.
func (c *Chunk) Data() []byte {
	return bytes.Clone(c.data)
}

// CRC returns the chunk checksum.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Text interprets the payload as UTF-8 text. Binary payloads (image data,
// palettes) are expected to fail here; that is not a structural error.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", &Error{
			Kind:   KindInvalidText,
			Offset: -1,
			Type:   c.typ.String(),
		}
	}
	return string(c.data), nil
}

// Bytes serializes the chunk. It is the exact inverse of ParseChunk.
func (c *Chunk) Bytes() []byte {
	return c.AppendTo(make([]byte, 0, c.Size()))
}

// AppendTo appends the serialized chunk to dst and returns the extended slice.
func (c *Chunk) AppendTo(dst []byte) []byte {
	w := binpkg.NewAppendWriter(binpkg.DefaultConfig(), dst)
	w.WriteUint32(c.Length())
	w.WriteBytes(c.typ[:])
	w.WriteBytes(c.data)
	w.WriteUint32(c.crc)
	return w.Bytes()
}

// Equal reports whether c and other have the same type, payload and CRC.
func (c *Chunk) Equal(other *Chunk) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.typ == other.typ && c.crc == other.crc && bytes.Equal(c.data, other.data)
}

func (c *Chunk) String() string {
	return fmt.Sprintf("%s(%d bytes, crc 0x%08x)", c.typ, len(c.data), c.crc)
}
