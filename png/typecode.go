package png

import "fmt"

// TypeCode is a 4-byte chunk type identifier. Each byte is an ASCII
// letter; bit 5 (the lowercase bit) of each byte carries a property:
//
//	byte 0  ancillary bit   uppercase = critical
//	byte 1  private bit     uppercase = public
//	byte 2  reserved bit    must be uppercase to conform
//	byte 3  safe-to-copy    lowercase = safe to copy
//
// TypeCode is a comparable value; == is byte-exact equality.
type TypeCode [4]byte

const caseBit = 0x20

// TypeCodeFromBytes validates b and returns it as a TypeCode.
// A lowercase reserved byte does not fail construction; see IsValid.
func TypeCodeFromBytes(b [4]byte) (TypeCode, error) {
	for i, c := range b {
		if !isLetter(c) {
			return TypeCode{}, &Error{
				Kind:    KindInvalidTypeCode,
				Offset:  -1,
				Type:    string(b[:]),
				Message: fmt.Sprintf("byte %d is 0x%02x, want an ASCII letter", i, c),
			}
		}
	}
	return TypeCode(b), nil
}

// ParseTypeCode parses a 4-character type code such as "IHDR" or "ruSt".
func ParseTypeCode(s string) (TypeCode, error) {
	if len(s) != 4 {
		return TypeCode{}, &Error{
			Kind:     KindInvalidLength,
			Offset:   -1,
			Expected: 4,
			Actual:   uint64(len(s)),
			Message:  fmt.Sprintf("type code %q is %d bytes, want 4", s, len(s)),
		}
	}
	var b [4]byte
	copy(b[:], s)
	return TypeCodeFromBytes(b)
}

// Bytes returns the raw type code bytes.
func (t TypeCode) Bytes() [4]byte {
	return t
}

// String returns the type code as text. Letter-only codes always decode.
func (t TypeCode) String() string {
	return string(t[:])
}

// IsCritical reports whether the ancillary bit is clear (byte 0 uppercase).
func (t TypeCode) IsCritical() bool {
	return t[0]&caseBit == 0
}

// IsPublic reports whether the private bit is clear (byte 1 uppercase).
func (t TypeCode) IsPublic() bool {
	return t[1]&caseBit == 0
}

// IsReservedBitValid reports whether the reserved bit is clear (byte 2
// uppercase), as required by the current format version.
func (t TypeCode) IsReservedBitValid() bool {
	return t[2]&caseBit == 0
}

// IsSafeToCopy reports whether the safe-to-copy bit is set (byte 3 lowercase).
func (t TypeCode) IsSafeToCopy() bool {
	return t[3]&caseBit != 0
}

// IsValid reports whether every byte is a letter and the reserved bit
// conforms. Constructors only enforce the first half, so a TypeCode with a
// lowercase third byte exists but is not valid.
func (t TypeCode) IsValid() bool {
	for _, c := range t {
		if !isLetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
