// Package filter implements the optional message filter pipeline used when
// hiding a message in a PNG chunk.
//
// A message can be passed through an ordered list of filters before it is
// stored as a chunk payload. The filtered bytes are wrapped in a small
// self-describing envelope so that decoding needs no out-of-band
// knowledge of which filters were used.
//
// # Supported Filters
//
//   - deflate (ID 1): zlib compression via [Deflate], using Go's
//     compress/zlib.
//
//   - fletcher32 (ID 3): integrity check via [Fletcher32Filter]. Appends a
//     big-endian Fletcher-32 checksum of its input on encode and verifies
//     it on decode.
//
//   - zstd (ID 32): Zstandard compression via [Zstd].
//
//   - lz4 (ID 33): LZ4 frame compression via [LZ4].
//
// # Envelope
//
//	envelope := magic(0x00 "PMF") version(1) count(1) stage{count} data
//	stage    := id(1) input_length(4)
//
// Stages are listed in the order they were applied. [Decode] undoes them
// last-first and checks that every stage produced exactly the recorded
// input length. Each filter stops reading once its output passes the
// recorded length, and no stage may record more than [MaxDecodedSize]
// bytes, so a small payload cannot inflate into an unbounded buffer.
//
// # Usage
//
//	p, err := filter.NewPipeline("zstd", "fletcher32")
//	payload, err := p.Encode([]byte("secret"))
//	message, err := filter.Decode(payload)
//
// # Key Types
//
//   - [Filter]: interface implemented by all filters
//   - [Pipeline]: an ordered set of filters that produces envelopes
//   - [Decode]: reverses any envelope
package filter
