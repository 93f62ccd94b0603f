package signature

// Size is the length of the signature in bytes.
const Size = 8

// Signature is the PNG file signature: 0x89 P N G \r \n 0x1a \n
var Signature = [Size]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Append appends the signature to dst and returns the extended slice.
func Append(dst []byte) []byte {
	return append(dst, Signature[:]...)
}

// Mismatch returns the index of the first byte of data that differs from
// the signature, or -1 if data starts with it. A buffer shorter than the
// signature mismatches at its own length.
func Mismatch(data []byte) int {
	for i := 0; i < Size; i++ {
		if i >= len(data) {
			return i
		}
		if data[i] != Signature[i] {
			return i
		}
	}
	return -1
}
