package binary

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestNewWriterSize(t *testing.T) {
	w := NewWriterSize(DefaultConfig(), 16)

	if len(w.Bytes()) != 0 {
		t.Errorf("expected empty buffer, got %d bytes", len(w.Bytes()))
	}
	if cap(w.Bytes()) != 16 {
		t.Errorf("expected capacity 16, got %d", cap(w.Bytes()))
	}
}

func TestWriteBytes(t *testing.T) {
	w := NewWriterSize(DefaultConfig(), 16)

	w.WriteBytes([]byte{0x01, 0x02, 0x03, 0x04})
	w.WriteBytes(nil)

	if !bytes.Equal(w.Bytes(), []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("unexpected data: %v", w.Bytes())
	}
}

func TestWriteUint8(t *testing.T) {
	w := NewWriterSize(DefaultConfig(), 1)
	w.WriteUint8(0x42)

	if !bytes.Equal(w.Bytes(), []byte{0x42}) {
		t.Errorf("expected [0x42], got %v", w.Bytes())
	}
}

func TestWriteUint32(t *testing.T) {
	w := NewWriterSize(DefaultConfig(), 4)
	w.WriteUint32(0x12345678)

	if !bytes.Equal(w.Bytes(), []byte{0x12, 0x34, 0x56, 0x78}) {
		t.Errorf("expected [0x12, 0x34, 0x56, 0x78], got %v", w.Bytes())
	}
}

func TestWriterLittleEndian(t *testing.T) {
	w := NewWriterSize(Config{ByteOrder: binary.LittleEndian}, 4)
	w.WriteUint32(0x12345678)

	if !bytes.Equal(w.Bytes(), []byte{0x78, 0x56, 0x34, 0x12}) {
		t.Errorf("expected little-endian bytes, got %v", w.Bytes())
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriterSize(DefaultConfig(), 9)
	w.WriteUint32(42)
	w.WriteBytes([]byte("RuSt"))
	w.WriteUint8(7)

	r := NewReader(w.Bytes(), DefaultConfig())

	length, err := r.ReadUint32()
	if err != nil || length != 42 {
		t.Errorf("ReadUint32: got %d, %v", length, err)
	}
	typ, err := r.ReadBytes(4)
	if err != nil || string(typ) != "RuSt" {
		t.Errorf("ReadBytes: got %q, %v", typ, err)
	}
	v8, err := r.ReadUint8()
	if err != nil || v8 != 7 {
		t.Errorf("ReadUint8: got %d, %v", v8, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("expected reader exhausted, %d bytes remain", r.Remaining())
	}
}

func TestAppendWriter(t *testing.T) {
	prefix := []byte{0xAA, 0xBB}
	w := NewAppendWriter(DefaultConfig(), prefix)
	w.WriteUint32(0x01020304)

	if !bytes.Equal(w.Bytes(), []byte{0xAA, 0xBB, 0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("unexpected data: %v", w.Bytes())
	}
}
