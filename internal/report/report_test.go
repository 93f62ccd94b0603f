package report

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	"github.com/robert-malhotra/go-pngme/png"
)

func testingContainer(t *testing.T) *png.Container {
	t.Helper()
	var chunks []*png.Chunk
	for _, c := range []struct{ typ, data string }{
		{"IHDR", "header"},
		{"ruSt", "This is where your secret message will be!"},
		{"IEND", ""},
	} {
		code, err := png.ParseTypeCode(c.typ)
		require.NoError(t, err)
		chunks = append(chunks, png.NewChunk(code, []byte(c.data)))
	}
	return png.New(chunks)
}

func TestBuild(t *testing.T) {
	c := testingContainer(t)
	r := Build(c, false)

	assert.Equal(t, c.Size(), r.Size)
	require.Len(t, r.Chunks, 3)

	ihdr := r.Chunks[0]
	assert.Equal(t, 0, ihdr.Index)
	assert.Equal(t, 8, ihdr.Offset)
	assert.Equal(t, "IHDR", ihdr.Type)
	assert.Equal(t, uint32(6), ihdr.Length)
	assert.True(t, ihdr.Critical)
	assert.True(t, ihdr.Public)
	assert.True(t, ihdr.ReservedValid)
	assert.False(t, ihdr.SafeToCopy)
	assert.Empty(t, ihdr.Digest)

	rust := r.Chunks[1]
	assert.Equal(t, 8+12+6, rust.Offset)
	assert.False(t, rust.Critical)
	assert.False(t, rust.Public)
	assert.True(t, rust.SafeToCopy)
	assert.Equal(t, uint32(2882656334), rust.CRC)

	assert.Equal(t, uint32(0xAE426082), r.Chunks[2].CRC)
}

func TestBuildDigest(t *testing.T) {
	r := Build(testingContainer(t), true)

	sum := blake3.Sum256([]byte("header"))
	assert.Equal(t, hex.EncodeToString(sum[:]), r.Chunks[0].Digest)

	empty := blake3.Sum256(nil)
	assert.Equal(t, hex.EncodeToString(empty[:]), r.Chunks[2].Digest)
}

func TestBuildEmptyContainer(t *testing.T) {
	r := Build(png.New(nil), false)
	assert.Equal(t, 8, r.Size)
	assert.Empty(t, r.Chunks)
}

func TestEntryFlags(t *testing.T) {
	assert.Equal(t, "critical,public", Entry{Critical: true, Public: true, ReservedValid: true}.Flags())
	assert.Equal(t, "ancillary,private,nonconforming,safe-to-copy", Entry{SafeToCopy: true}.Flags())
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "cbor"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, Build(testingContainer(t), false), Options{}))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)

	assert.True(t, strings.HasPrefix(lines[0], "INDEX"))
	assert.NotContains(t, lines[0], "BLAKE3")
	assert.Contains(t, lines[1], "IHDR")
	assert.Contains(t, lines[2], "ruSt")
	assert.Contains(t, lines[2], "0xabd1d84e")
	assert.Contains(t, lines[2], "ancillary,private,safe-to-copy")
	assert.Contains(t, out, "3 chunks, ")
}

func TestRenderTextDigestColumn(t *testing.T) {
	var buf bytes.Buffer
	r := Build(testingContainer(t), true)
	require.NoError(t, Render(&buf, FormatText, r, Options{}))

	assert.Contains(t, buf.String(), "BLAKE3")
	assert.Contains(t, buf.String(), r.Chunks[1].Digest)
}

func TestRenderTextSingular(t *testing.T) {
	code, err := png.ParseTypeCode("IEND")
	require.NoError(t, err)

	var buf bytes.Buffer
	r := Build(png.New([]*png.Chunk{png.NewChunk(code, nil)}), false)
	require.NoError(t, Render(&buf, FormatText, r, Options{}))
	assert.Contains(t, buf.String(), "1 chunk, 20 bytes")
}

func TestRenderJSON(t *testing.T) {
	r := Build(testingContainer(t), true)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, r, Options{}))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r, decoded)
	assert.Contains(t, buf.String(), `"reserved_valid": true`)
}

func TestRenderCBORDeterministic(t *testing.T) {
	r := Build(testingContainer(t), false)

	var first, second bytes.Buffer
	require.NoError(t, Render(&first, FormatCBOR, r, Options{}))
	require.NoError(t, Render(&second, FormatCBOR, r, Options{}))
	assert.Equal(t, first.Bytes(), second.Bytes())

	var decoded Report
	require.NoError(t, cbor.Unmarshal(first.Bytes(), &decoded))
	assert.Equal(t, r, decoded)
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, Format("yaml"), Report{}, Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderTextColumnsAlignWithColor(t *testing.T) {
	r := Build(testingContainer(t), false)

	var plain, styled bytes.Buffer
	require.NoError(t, Render(&plain, FormatText, r, Options{}))
	require.NoError(t, Render(&styled, FormatText, r, Options{Color: true}))

	plainLines := strings.Split(plain.String(), "\n")
	styledLines := strings.Split(styled.String(), "\n")
	require.Equal(t, len(plainLines), len(styledLines))

	// Styling only wraps the header; every data row is laid out the same.
	assert.Equal(t, plainLines[1:], styledLines[1:])
	assert.Contains(t, styledLines[0], "INDEX")

	dataColumn := strings.Index(plainLines[1], "8")
	assert.Equal(t, strings.Index(plainLines[0], "OFFSET"), dataColumn)
}
