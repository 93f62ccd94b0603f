package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-pngme/internal/filter"
	"github.com/robert-malhotra/go-pngme/png"
)

func (a *App) decodeCommand() *Command {
	var (
		g         globalFlags
		file      string
		chunkType string
		envelope  bool
	)

	return &Command{
		Name:    "decode",
		Summary: "Print the message stored in a chunk",
		Description: `Print the payload of the first chunk of the given type as text.

Payloads written with --filter are unwrapped automatically. --envelope
additionally requires that the payload is a filter envelope.`,
		Usage: "pngme decode -f FILE -c TYPE [--envelope]",
		Examples: []Example{
			{Command: "pngme decode -f dice.png -c ruSt"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flagSet.StringVarP(&file, "file", "f", "", "PNG file to read")
			flagSet.StringVarP(&chunkType, "chunk-type", "c", "", "four-letter chunk type")
			flagSet.BoolVar(&envelope, "envelope", false, "require a filter envelope")
			g.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if err := noArgs(args); err != nil {
				return err
			}
			if err := requireFlag("file", file); err != nil {
				return err
			}
			if err := requireFlag("chunk-type", chunkType); err != nil {
				return err
			}

			s, err := a.start("decode", &g)
			if err != nil {
				return err
			}
			c, err := s.load(file)
			if err != nil {
				return err
			}

			chunk := c.FindByType(chunkType)
			if chunk == nil {
				return &png.Error{Kind: png.KindChunkNotFound, Offset: -1, Type: chunkType}
			}

			message, err := messageText(chunk, envelope)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "Decoded message: %s\n", message)
			return nil
		},
	}
}

// messagePayload returns the chunk payload with any filter envelope
// removed. With required set, a payload that is not an envelope is an
// error.
func messagePayload(chunk *png.Chunk, required bool) ([]byte, error) {
	data := chunk.Data()
	if !filter.IsEnvelope(data) {
		if required {
			return nil, fmt.Errorf("%s chunk: %w", chunk.Type(), filter.ErrNotEnvelope)
		}
		return data, nil
	}
	decoded, err := filter.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s chunk: %w", chunk.Type(), err)
	}
	return decoded, nil
}

// messageText is messagePayload decoded as UTF-8 text.
func messageText(chunk *png.Chunk, required bool) (string, error) {
	payload, err := messagePayload(chunk, required)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(payload) {
		return "", &png.Error{Kind: png.KindInvalidText, Offset: -1, Type: chunk.Type().String()}
	}
	return string(payload), nil
}
