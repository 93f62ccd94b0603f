package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-pngme/internal/config"
	"github.com/robert-malhotra/go-pngme/internal/fileio"
	"github.com/robert-malhotra/go-pngme/internal/report"
	"github.com/robert-malhotra/go-pngme/png"
)

// App carries the streams and build information shared by every command.
type App struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Version string

	// Color enables terminal styling in print output. NewApp sets it when
	// stdout is a terminal.
	Color bool
}

// NewApp returns an App bound to the process streams.
func NewApp(version string) *App {
	return &App{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: version,
		Color:   report.ColorEnabled(os.Stdout),
	}
}

// Root returns the pngme command tree.
func (a *App) Root() *Command {
	var showVersion bool
	return &Command{
		Name:        "pngme",
		Description: "Hide messages inside PNG files as ancillary chunks.",
		Output:      a.Stderr,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("pngme", pflag.ContinueOnError)
			flagSet.BoolVar(&showVersion, "version", false, "print the version and exit")
			return flagSet
		},
		Subcommands: []*Command{
			a.encodeCommand(),
			a.decodeCommand(),
			a.removeCommand(),
			a.printCommand(),
		},
		Run: func(args []string) error {
			if showVersion {
				fmt.Fprintf(a.Stdout, "pngme %s\n", a.Version)
				return nil
			}
			return fmt.Errorf("command required\n\nRun 'pngme --help' for usage.")
		},
	}
}

// globalFlags are accepted by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func (g *globalFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&g.configPath, "config", "", "configuration file (default $"+config.EnvVar+")")
	flagSet.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// session is the per-invocation state built from the global flags.
type session struct {
	config *config.Config
	logger *slog.Logger
}

func (a *App) start(command string, g *globalFlags) (*session, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return &session{
		config: cfg,
		logger: NewLogger(a.Stderr, cfg.Level()).With("command", command),
	}, nil
}

// load reads and parses the PNG file at path.
func (s *session) load(path string) (*png.Container, error) {
	data, err := fileio.Read(path)
	if err != nil {
		return nil, err
	}
	c, err := png.Parse(data, png.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.logger.Debug("loaded file", "file", path, "chunks", c.Len(), "bytes", len(data))
	return c, nil
}

// save serializes c and atomically replaces path with it.
func (s *session) save(path string, c *png.Container) error {
	if err := fileio.WriteAtomic(path, c.Bytes(), fileio.DefaultPerm); err != nil {
		return err
	}
	s.logger.Debug("wrote file", "file", path, "chunks", c.Len(), "bytes", c.Size())
	return nil
}

func requireFlag(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}

func noArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	return nil
}
