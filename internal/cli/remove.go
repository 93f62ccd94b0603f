package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-pngme/png"
)

func (a *App) removeCommand() *Command {
	var (
		g         globalFlags
		file      string
		chunkType string
		envelope  bool
	)

	return &Command{
		Name:    "remove",
		Summary: "Remove the first chunk of a type",
		Description: `Remove the first chunk of the given type and rewrite the file.

The removed payload is printed when it is text. Binary payloads are
reported by size only.`,
		Usage: "pngme remove -f FILE -c TYPE [--envelope]",
		Examples: []Example{
			{Command: "pngme remove -f dice.png -c ruSt"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("remove", pflag.ContinueOnError)
			flagSet.StringVarP(&file, "file", "f", "", "PNG file to rewrite")
			flagSet.StringVarP(&chunkType, "chunk-type", "c", "", "four-letter chunk type")
			flagSet.BoolVar(&envelope, "envelope", false, "require the removed payload to be a filter envelope")
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

			s, err := a.start("remove", &g)
			if err != nil {
				return err
			}
			c, err := s.load(file)
			if err != nil {
				return err
			}

			removed, err := c.RemoveFirst(chunkType)
			if err != nil {
				return err
			}

			// Unwrap before writing so a corrupt envelope leaves the file
			// untouched.
			contents, err := messageText(removed, envelope)
			switch {
			case err == nil:
			case !envelope && errors.Is(err, png.ErrInvalidText):
				contents = fmt.Sprintf("<%d bytes of binary data>", removed.Length())
			default:
				return err
			}

			if err := s.save(file, c); err != nil {
				return err
			}

			s.logger.Info("removed chunk", "file", file, "type", chunkType, "bytes", removed.Length())
			fmt.Fprintf(a.Stdout, "Removed chunk '%s' from %s\n", chunkType, file)
			fmt.Fprintf(a.Stdout, "Removed chunk contained: %s\n", contents)
			return nil
		},
	}
}
