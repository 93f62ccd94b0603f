// Package report turns a parsed container into chunk summaries and renders
// them for the print command.
package report

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/term"

	"github.com/robert-malhotra/go-pngme/png"
)

// ErrUnknownFormat is returned for an output format name that is not one
// of Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatCBOR}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of text, json, cbor)", ErrUnknownFormat, name)
}

// Entry summarizes one chunk.
type Entry struct {
	Index         int    `json:"index"`
	Offset        int    `json:"offset"`
	Type          string `json:"type"`
	Length        uint32 `json:"length"`
	CRC           uint32 `json:"crc"`
	Critical      bool   `json:"critical"`
	Public        bool   `json:"public"`
	ReservedValid bool   `json:"reserved_valid"`
	SafeToCopy    bool   `json:"safe_to_copy"`

	// Digest is the hex BLAKE3-256 of the payload, when requested.
	Digest string `json:"digest,omitempty"`
}

// Report is the printable description of a container.
type Report struct {
	Size   int     `json:"size"`
	Chunks []Entry `json:"chunks"`
}

// Build summarizes every chunk of c in file order. With digest set, each
// entry carries a BLAKE3 digest of the chunk payload.
func Build(c *png.Container, digest bool) Report {
	chunks := c.Chunks()
	r := Report{
		Size:   c.Size(),
		Chunks: make([]Entry, 0, len(chunks)),
	}
	for i, s := range c.Summaries() {
		e := Entry{
			Index:         s.Index,
			Offset:        s.Offset,
			Type:          s.Type.String(),
			Length:        s.Length,
			CRC:           s.CRC,
			Critical:      s.Type.IsCritical(),
			Public:        s.Type.IsPublic(),
			ReservedValid: s.Type.IsReservedBitValid(),
			SafeToCopy:    s.Type.IsSafeToCopy(),
		}
		if digest {
			sum := blake3.Sum256(chunks[i].Data())
			e.Digest = hex.EncodeToString(sum[:])
		}
		r.Chunks = append(r.Chunks, e)
	}
	return r
}

// Options controls rendering.
type Options struct {
	// Color enables terminal styling of the text table header.
	Color bool
}

// ColorEnabled reports whether f is a terminal, the condition under which
// the CLI turns on styling.
func ColorEnabled(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Render writes r to w in the given format.
func Render(w io.Writer, format Format, r Report, opts Options) error {
	switch format {
	case FormatText:
		return renderText(w, r, opts)
	case FormatJSON:
		return renderJSON(w, r)
	case FormatCBOR:
		return renderCBOR(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Flags describes an entry's type code properties as words.
func (e Entry) Flags() string {
	flags := make([]string, 0, 4)
	if e.Critical {
		flags = append(flags, "critical")
	} else {
		flags = append(flags, "ancillary")
	}
	if e.Public {
		flags = append(flags, "public")
	} else {
		flags = append(flags, "private")
	}
	if !e.ReservedValid {
		flags = append(flags, "nonconforming")
	}
	if e.SafeToCopy {
		flags = append(flags, "safe-to-copy")
	}
	return strings.Join(flags, ",")
}
