package binary

import "hash/crc32"

// CRC32 computes the CRC-32 (ISO-HDLC, the IEEE 802.3 polynomial 0xEDB88320
// reflected) used by PNG for chunk integrity. The parts are checksummed as
// if concatenated, so callers can pass the type code and payload without
// building a combined buffer.
func CRC32(parts ...[]byte) uint32 {
	var crc uint32
	for _, p := range parts {
		crc = crc32.Update(crc, crc32.IEEETable, p)
	}
	return crc
}

// Fletcher32 computes a Fletcher-32 checksum, used by the message filter
// pipeline as an extra payload integrity check.
//
// The input is treated as a sequence of 16-bit words in little-endian order.
// If the input has an odd number of bytes, it is padded with a zero byte.
func Fletcher32(data []byte) uint32 {
	var sum1, sum2 uint32

	length := len(data)
	i := 0
	for ; i+1 < length; i += 2 {
		word := uint32(data[i]) | uint32(data[i+1])<<8
		sum1 = (sum1 + word) % 65535
		sum2 = (sum2 + sum1) % 65535
	}

	// Odd trailing byte, zero padded
	if i < length {
		word := uint32(data[i])
		sum1 = (sum1 + word) % 65535
		sum2 = (sum2 + sum1) % 65535
	}

	return (sum2 << 16) | sum1
}

// VerifyFletcher32 verifies data against an expected Fletcher-32 checksum.
func VerifyFletcher32(data []byte, expected uint32) bool {
	return Fletcher32(data) == expected
}
