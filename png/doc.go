// Package png reads and writes the chunk structure of PNG files.
//
// It does not decode pixels. It treats a PNG file as a container: an
// 8-byte signature followed by a sequence of self-delimiting chunks, and
// lets callers inspect, add and remove chunks while preserving the exact
// byte layout of everything else.
//
// # Wire Format
//
// All integers are big-endian and there is no padding:
//
//	file   := signature(8) chunk*
//	chunk  := length(4) type(4) payload(length) crc(4)
//	crc    := CRC-32 (ISO-HDLC) over type ++ payload
//
// # Type Codes
//
// A [TypeCode] is four ASCII letters. The case of each letter is a flag:
// critical (byte 0 upper), public (byte 1 upper), reserved bit (byte 2
// must be upper), safe to copy (byte 3 lower). Construction rejects
// non-letters but accepts a lowercase reserved byte; [TypeCode.IsValid]
// reports full conformance.
//
// # Parsing
//
// [Parse] takes the whole file in memory. It is all or nothing: a bad
// signature, a truncated tail, a malformed record or a CRC mismatch fails
// the whole call and no partially parsed container is returned. There is
// no option to skip CRC verification.
//
//	c, err := png.Parse(data)
//	if errors.Is(err, png.ErrChecksumMismatch) {
//	    // corrupted chunk
//	}
//
// # Editing
//
//	t, _ := png.ParseTypeCode("ruSt")
//	c.Append(png.NewChunk(t, []byte("hidden")))
//	removed, err := c.RemoveFirst("ruSt")
//	out := c.Bytes()
//
// Serializing a parsed, unmodified container reproduces its input exactly.
//
// # Errors
//
// Every failure is an [*Error] with a [Kind], a byte offset where one
// applies, and expected/actual values for length and checksum failures.
// Each kind also has a sentinel ([ErrBadSignature], [ErrInvalidLength],
// [ErrInvalidTypeCode], [ErrMalformedChunk], [ErrTruncatedFile],
// [ErrChecksumMismatch], [ErrChunkNotFound], [ErrInvalidText]) that
// matches with errors.Is.
//
// # Key Types and Functions
//
//   - [TypeCode], [ParseTypeCode], [TypeCodeFromBytes]
//   - [Chunk], [NewChunk], [ParseChunk]
//   - [Container], [Parse], [New]
package png
