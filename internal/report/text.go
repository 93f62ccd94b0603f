package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func renderText(w io.Writer, r Report, opts Options) error {
	columns := []string{"INDEX", "OFFSET", "TYPE", "LENGTH", "CRC", "FLAGS"}
	digests := len(r.Chunks) > 0 && r.Chunks[0].Digest != ""
	if digests {
		columns = append(columns, "BLAKE3")
	}

	// The table is aligned on plain text; styling is applied afterwards
	// because tabwriter would count escape sequences as cell width.
	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, e := range r.Chunks {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t0x%08x\t%s", e.Index, e.Offset, e.Type, e.Length, e.CRC, e.Flags())
		if digests {
			fmt.Fprintf(tw, "\t%s", e.Digest)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	header, rows, _ := strings.Cut(table.String(), "\n")
	if opts.Color {
		header = headerStyle.Render(strings.TrimRight(header, " "))
	}
	if _, err := fmt.Fprintf(w, "%s\n%s", header, rows); err != nil {
		return err
	}

	noun := "chunks"
	if len(r.Chunks) == 1 {
		noun = "chunk"
	}
	_, err := fmt.Fprintf(w, "\n%d %s, %d bytes\n", len(r.Chunks), noun, r.Size)
	return err
}
