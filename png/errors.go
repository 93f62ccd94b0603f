package png

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a stable category for programmatic error handling.
// Callers should branch on Kind (or on the matching sentinel with
// errors.Is) rather than on error strings.
type Kind string

const (
	KindBadSignature     Kind = "BadSignature"
	KindInvalidLength    Kind = "InvalidLength"
	KindInvalidTypeCode  Kind = "InvalidTypeCode"
	KindMalformedChunk   Kind = "MalformedChunk"
	KindTruncatedFile    Kind = "TruncatedFile"
	KindChecksumMismatch Kind = "ChecksumMismatch"
	KindChunkNotFound    Kind = "ChunkNotFound"
	KindInvalidText      Kind = "InvalidText"
)

// Sentinel errors, one per Kind. Every *Error unwraps to the sentinel of
// its kind, so errors.Is(err, ErrChecksumMismatch) works through any
// amount of fmt.Errorf("%w") wrapping.
var (
	ErrBadSignature     = errors.New("bad PNG signature")
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidTypeCode  = errors.New("invalid chunk type code")
	ErrMalformedChunk   = errors.New("malformed chunk")
	ErrTruncatedFile    = errors.New("truncated file")
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")
	ErrChunkNotFound    = errors.New("chunk not found")
	ErrInvalidText      = errors.New("chunk data is not valid UTF-8")
)

var sentinels = map[Kind]error{
	KindBadSignature:     ErrBadSignature,
	KindInvalidLength:    ErrInvalidLength,
	KindInvalidTypeCode:  ErrInvalidTypeCode,
	KindMalformedChunk:   ErrMalformedChunk,
	KindTruncatedFile:    ErrTruncatedFile,
	KindChecksumMismatch: ErrChecksumMismatch,
	KindChunkNotFound:    ErrChunkNotFound,
	KindInvalidText:      ErrInvalidText,
}

// Error is the structured error returned by every operation in this package.
//
// Offset is the byte offset in the parsed buffer the failure refers to, or
// -1 when there is no buffer position (construction, lookup). Type is the
// chunk type involved, if known. Expected and Actual carry the compared
// values for length and checksum failures.
type Error struct {
	Kind     Kind
	Offset   int
	Type     string
	Expected uint64
	Actual   uint64
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	if sentinel := sentinels[e.Kind]; sentinel != nil {
		b.WriteString(sentinel.Error())
	} else if e.Kind != "" {
		fmt.Fprintf(&b, "png error %q", string(e.Kind))
	} else {
		b.WriteString("png error")
	}
	if e.Type != "" {
		fmt.Fprintf(&b, " (type %q)", e.Type)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	var errs []error
	if sentinel := sentinels[e.Kind]; sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}

// atOffset rebases a chunk-relative error onto the container offset of
// the chunk that produced it.
func atOffset(err error, base int) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	shifted := *e
	if shifted.Offset >= 0 {
		shifted.Offset += base
	} else {
		shifted.Offset = base
	}
	return &shifted
}
