package cli

import (
	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-pngme/internal/report"
)

func (a *App) printCommand() *Command {
	var (
		g      globalFlags
		file   string
		format string
		digest bool
	)

	return &Command{
		Name:    "print",
		Summary: "List every chunk of a PNG file",
		Usage:   "pngme print -f FILE [--format text|json|cbor] [--digest]",
		Examples: []Example{
			{Command: "pngme print -f dice.png"},
			{Description: "Machine-readable listing with payload digests", Command: "pngme print -f dice.png --format json --digest"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("print", pflag.ContinueOnError)
			flagSet.StringVarP(&file, "file", "f", "", "PNG file to read")
			flagSet.StringVar(&format, "format", "", "output format: text, json, cbor (default print.format from config)")
			flagSet.BoolVar(&digest, "digest", false, "include a BLAKE3 digest of each payload")
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

			s, err := a.start("print", &g)
			if err != nil {
				return err
			}

			if format == "" {
				format = s.config.Print.Format
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			c, err := s.load(file)
			if err != nil {
				return err
			}

			r := report.Build(c, digest || s.config.Print.Digest)
			return report.Render(a.Stdout, f, r, report.Options{Color: a.Color && f == report.FormatText})
		},
	}
}
