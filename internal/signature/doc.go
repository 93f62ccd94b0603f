// Package signature holds the fixed PNG file signature.
//
// Every PNG file starts with the same 8 bytes:
// 0x89 P N G \r \n 0x1a \n (hex: 89 50 4E 47 0D 0A 1A 0A).
//
// The high-bit first byte catches transports that strip bit 7, the
// CR-LF pair catches line-ending conversion in either direction, and
// 0x1a stops a DOS "type" listing. The signature is checked once at
// offset 0; unlike formats with relocatable headers it is never
// searched for elsewhere in the file.
//
// # Key Types and Functions
//
//   - [Signature]: the 8 signature bytes
//   - [Append]: appends the signature to a buffer
//   - [Mismatch]: locates the first byte that differs from the signature
package signature
