package binary

import "encoding/binary"

// Writer accumulates binary data in memory. Nothing reaches a destination
// until the caller takes Bytes, so a failed encode never leaves a partial
// output behind.
type Writer struct {
	buf   []byte
	order binary.ByteOrder
}

// NewWriterSize creates a writer with capacity preallocated for size bytes.
func NewWriterSize(cfg Config, size int) *Writer {
	return NewAppendWriter(cfg, make([]byte, 0, size))
}

// NewAppendWriter creates a writer that appends to dst. Bytes returns
// dst extended by everything written.
func NewAppendWriter(cfg Config, dst []byte) *Writer {
	return &Writer{
		buf:   dst,
		order: cfg.ByteOrder,
	}
}

// WriteBytes appends the given bytes.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteUint8 appends an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint32 appends an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// Bytes returns the accumulated data. The slice aliases the writer's
// buffer until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}
