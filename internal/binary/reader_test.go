package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestReaderReadUint8(t *testing.T) {
	data := []byte{0x42, 0xFF, 0x00}
	r := NewReader(data, DefaultConfig())

	v, err := r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02x", v)
	}

	v, err = r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0xFF {
		t.Errorf("expected 0xFF, got 0x%02x", v)
	}
}

func TestReaderReadUint32(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(0x12345678))
	binary.Write(&buf, binary.BigEndian, uint32(0xDEADBEEF))

	r := NewReader(buf.Bytes(), DefaultConfig())

	v, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08x", v)
	}

	v, err = r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 0xDEADBEEF {
		t.Errorf("expected 0xDEADBEEF, got 0x%08x", v)
	}
}

func TestReaderLittleEndianConfig(t *testing.T) {
	data := []byte{0x78, 0x56, 0x34, 0x12}
	r := NewReader(data, Config{ByteOrder: binary.LittleEndian})

	v, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08x", v)
	}
}

func TestReaderReadBytesIsView(t *testing.T) {
	data := []byte("IHDRpayload")
	r := NewReader(data, DefaultConfig())

	typ, err := r.ReadBytes(4)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(typ) != "IHDR" {
		t.Errorf("expected IHDR, got %q", typ)
	}
	if r.Pos() != 4 {
		t.Errorf("expected position 4, got %d", r.Pos())
	}

	// Appending to the returned slice must not clobber the following bytes.
	_ = append(typ, 'X')
	if data[4] != 'p' {
		t.Errorf("append through returned view overwrote source data")
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03}, DefaultConfig())

	_, err := r.ReadUint32()
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
	if r.Pos() != 0 {
		t.Errorf("failed read advanced position to %d", r.Pos())
	}
}

func TestReaderZeroLengthRead(t *testing.T) {
	r := NewReader([]byte{0x01}, DefaultConfig())
	r.Skip(1)

	buf, err := r.ReadBytes(0)
	if err != nil {
		t.Fatalf("zero-length read at end failed: %v", err)
	}
	if len(buf) != 0 {
		t.Errorf("expected empty slice, got %d bytes", len(buf))
	}
}

func TestReaderSkipAndRemaining(t *testing.T) {
	r := NewReader(make([]byte, 10), DefaultConfig())

	if r.Remaining() != 10 {
		t.Errorf("expected 10 remaining, got %d", r.Remaining())
	}

	r.Skip(4)
	if r.Pos() != 4 {
		t.Errorf("expected position 4 after skip, got %d", r.Pos())
	}
	if r.Remaining() != 6 {
		t.Errorf("expected 6 remaining, got %d", r.Remaining())
	}

	r.Skip(20)
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining past the end, got %d", r.Remaining())
	}
}

func TestReaderPeek(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	r := NewReader(data, DefaultConfig())

	peeked, err := r.Peek(2)
	if err != nil {
		t.Fatalf("Peek failed: %v", err)
	}
	if !bytes.Equal(peeked, []byte{0x01, 0x02}) {
		t.Errorf("unexpected peek result: %v", peeked)
	}

	// Position should not change
	if r.Pos() != 0 {
		t.Errorf("Peek changed position to %d", r.Pos())
	}

	v, _ := r.ReadUint8()
	if v != 0x01 {
		t.Errorf("expected 0x01 after peek, got 0x%02x", v)
	}
}
