package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-pngme/internal/filter"
	"github.com/robert-malhotra/go-pngme/png"
)

func (a *App) encodeCommand() *Command {
	var (
		g         globalFlags
		file      string
		chunkType string
		message   string
		output    string
		filters   []string
	)

	return &Command{
		Name:    "encode",
		Summary: "Append a message chunk to a PNG file",
		Description: `Append a chunk carrying MESSAGE to a PNG file.

The file is parsed and validated first. The result is written to --output,
or back over the input file when --output is not given. With --filter the
message is transformed by each named filter in order and stored inside an
envelope that decode and remove unwrap.`,
		Usage: "pngme encode -f FILE -c TYPE -m MESSAGE [-o OUT] [--filter NAME]...",
		Examples: []Example{
			{Description: "Hide a message in place", Command: "pngme encode -f dice.png -c ruSt -m 'hello'"},
			{Description: "Compress and checksum into a new file", Command: "pngme encode -f dice.png -c ruSt -m 'hello' -o out.png --filter zstd --filter fletcher32"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			flagSet.StringVarP(&file, "file", "f", "", "PNG file to read")
			flagSet.StringVarP(&chunkType, "chunk-type", "c", "", "four-letter chunk type (default encode.chunk_type from config)")
			flagSet.StringVarP(&message, "message", "m", "", "message to embed")
			flagSet.StringVarP(&output, "output", "o", "", "output file (default: overwrite --file)")
			flagSet.StringArrayVar(&filters, "filter", nil, "filter applied to the message, repeatable ("+strings.Join(filter.Names(), ", ")+")")
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

			s, err := a.start("encode", &g)
			if err != nil {
				return err
			}

			if chunkType == "" {
				chunkType = s.config.Encode.ChunkType
			}
			if err := requireFlag("chunk-type", chunkType); err != nil {
				return err
			}
			code, err := png.ParseTypeCode(chunkType)
			if err != nil {
				return err
			}
			if filters == nil {
				filters = s.config.Encode.Filters
			}

			c, err := s.load(file)
			if err != nil {
				return err
			}

			payload := []byte(message)
			if len(filters) > 0 {
				pipeline, err := filter.NewPipeline(filters...)
				if err != nil {
					return err
				}
				if payload, err = pipeline.Encode(payload); err != nil {
					return fmt.Errorf("filtering message: %w", err)
				}
				s.logger.Debug("filtered message", "filters", pipeline.Names(), "in", len(message), "out", len(payload))
			}

			c.Append(png.NewChunk(code, payload))

			destination := output
			if destination == "" {
				destination = file
			}
			if err := s.save(destination, c); err != nil {
				return err
			}

			s.logger.Info("encoded message", "file", destination, "type", code.String(), "bytes", len(payload))
			fmt.Fprintf(a.Stdout, "Message encoded successfully to %s\n", destination)
			return nil
		},
	}
}
