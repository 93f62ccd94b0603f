package png

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	binpkg "github.com/robert-malhotra/go-pngme/internal/binary"
	"github.com/robert-malhotra/go-pngme/internal/signature"
)

// Container is a PNG file held in memory: the fixed signature followed by
// an ordered chunk sequence that mirrors on-disk order.
//
// A Container is not safe for concurrent use. Chunks are immutable and may
// be shared; use Clone to hand a container to another goroutine.
type Container struct {
	chunks []*Chunk
	logger *slog.Logger
}

// Summary describes one chunk and where it sits in the serialized file.
type Summary struct {
	Index  int
	Offset int
	Type   TypeCode
	Length uint32
	CRC    uint32
}

// New builds a container from an explicit chunk list. Nil chunks are
// skipped.
func New(chunks []*Chunk, opts ...Option) *Container {
	o := applyOptions(opts)
	c := &Container{
		chunks: make([]*Chunk, 0, len(chunks)),
		logger: o.logger,
	}
	for _, chunk := range chunks {
		c.Append(chunk)
	}
	return c
}

// Parse decodes a complete PNG file. It checks the signature, then parses
// chunks back to back from offset 8 until the buffer is consumed.
//
// Parsing is all or nothing: on any failure no container is returned and
// the error carries the byte offset of the offending chunk or field.
func Parse(data []byte, opts ...Option) (*Container, error) {
	o := applyOptions(opts)

	if at := signature.Mismatch(data); at >= 0 {
		return nil, &Error{
			Kind:    KindBadSignature,
			Offset:  at,
			Message: fmt.Sprintf("got % x", data[:min(len(data), signature.Size)]),
		}
	}

	r := binpkg.NewReader(data, binpkg.DefaultConfig())
	r.Skip(signature.Size)

	var chunks []*Chunk
	for r.Remaining() > 0 {
		start := r.Pos()

		if r.Remaining() < ChunkOverhead {
			return nil, &Error{
				Kind:     KindTruncatedFile,
				Offset:   start,
				Expected: ChunkOverhead,
				Actual:   uint64(r.Remaining()),
				Message:  fmt.Sprintf("%d trailing bytes do not form a chunk", r.Remaining()),
			}
		}

		header, _ := r.Peek(lengthFieldSize + typeFieldSize)
		length := r.ByteOrder().Uint32(header)
		size := uint64(length) + ChunkOverhead
		if size > uint64(r.Remaining()) {
			e := &Error{
				Kind:     KindTruncatedFile,
				Offset:   start,
				Expected: size,
				Actual:   uint64(r.Remaining()),
				Message:  fmt.Sprintf("chunk declares %d payload bytes but only %d bytes remain", length, r.Remaining()),
			}
			if t, err := TypeCodeFromBytes([4]byte(header[lengthFieldSize:])); err == nil {
				e.Type = t.String()
			}
			return nil, e
		}

		raw, _ := r.ReadBytes(int(size))
		chunk, err := ParseChunk(raw)
		if err != nil {
			return nil, atOffset(err, start)
		}

		o.logger.Debug("parsed chunk",
			"type", chunk.Type().String(),
			"length", chunk.Length(),
			"offset", start,
		)
		chunks = append(chunks, chunk)
	}

	o.logger.Debug("parsed container", "chunks", len(chunks), "bytes", len(data))

	return &Container{
		chunks: chunks,
		logger: o.logger,
	}, nil
}

// Signature returns the file signature.
func (c *Container) Signature() [signature.Size]byte {
	return signature.Signature
}

// Len returns the number of chunks.
func (c *Container) Len() int {
	return len(c.chunks)
}

// Chunks returns the chunks in file order. The returned slice is a copy;
// modifying it does not affect the container.
func (c *Container) Chunks() []*Chunk {
	return slices.Clone(c.chunks)
}

// Append adds chunk at the end. No deduplication or reordering happens;
// placement rules such as "before IEND" are the caller's business.
// A type code with a non-conforming reserved bit is accepted and logged.
func (c *Container) Append(chunk *Chunk) {
	if chunk == nil {
		return
	}
	if !chunk.Type().IsReservedBitValid() {
		c.logger.Warn("appending chunk with non-conforming reserved bit",
			"type", chunk.Type().String(),
		)
	}
	c.chunks = append(c.chunks, chunk)
}

// FindByType returns the first chunk whose type code renders as code, or
// nil if there is none.
func (c *Container) FindByType(code string) *Chunk {
	if i := c.index(code); i >= 0 {
		return c.chunks[i]
	}
	return nil
}

// RemoveFirst removes and returns the first chunk whose type code renders
// as code. The remaining chunks keep their relative order. If no chunk
// matches, the container is left unchanged and a KindChunkNotFound error
// is returned.
func (c *Container) RemoveFirst(code string) (*Chunk, error) {
	i := c.index(code)
	if i < 0 {
		return nil, &Error{
			Kind:   KindChunkNotFound,
			Offset: -1,
			Type:   code,
		}
	}
	chunk := c.chunks[i]
	c.chunks = slices.Delete(c.chunks, i, i+1)
	return chunk, nil
}

func (c *Container) index(code string) int {
	return slices.IndexFunc(c.chunks, func(chunk *Chunk) bool {
		return chunk.Type().String() == code
	})
}

// Size returns the serialized size in bytes.
func (c *Container) Size() int {
	n := signature.Size
	for _, chunk := range c.chunks {
		n += chunk.Size()
	}
	return n
}

// Bytes serializes the container: signature followed by every chunk in order.
func (c *Container) Bytes() []byte {
	buf := signature.Append(make([]byte, 0, c.Size()))
	for _, chunk := range c.chunks {
		buf = chunk.AppendTo(buf)
	}
	return buf
}

// WriteTo writes the serialized container to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}

// Clone returns a container with its own chunk sequence. Chunks themselves
// are immutable and shared.
func (c *Container) Clone() *Container {
	return &Container{
		chunks: slices.Clone(c.chunks),
		logger: c.logger,
	}
}

// Summaries describes each chunk with its byte offset in the serialized file.
func (c *Container) Summaries() []Summary {
	out := make([]Summary, 0, len(c.chunks))
	offset := signature.Size
	for i, chunk := range c.chunks {
		out = append(out, Summary{
			Index:  i,
			Offset: offset,
			Type:   chunk.Type(),
			Length: chunk.Length(),
			CRC:    chunk.CRC(),
		})
		offset += chunk.Size()
	}
	return out
}
