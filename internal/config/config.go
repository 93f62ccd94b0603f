// Package config loads pngme settings.
//
// Settings come from a single YAML file named by the --config flag or,
// failing that, the PNGME_CONFIG environment variable. Without either the
// built-in defaults apply. Values in the file override defaults field by
// field; unknown keys are rejected so a typo cannot silently change
// nothing.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robert-malhotra/go-pngme/internal/filter"
	"github.com/robert-malhotra/go-pngme/internal/report"
	"github.com/robert-malhotra/go-pngme/png"
)

// EnvVar names the environment variable consulted when no --config flag
// is given.
const EnvVar = "PNGME_CONFIG"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete pngme configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	Encode EncodeConfig `yaml:"encode"`
	Print  PrintConfig  `yaml:"print"`
}

// EncodeConfig holds defaults for the encode command.
type EncodeConfig struct {
	// Filters are applied to every message before it is embedded, in
	// order. Empty means the message is stored verbatim.
	Filters []string `yaml:"filters"`

	// ChunkType is used when the command line gives no chunk type.
	ChunkType string `yaml:"chunk_type"`
}

// PrintConfig holds defaults for the print command.
type PrintConfig struct {
	// Format is text, json or cbor.
	Format string `yaml:"format"`

	// Digest adds a BLAKE3 digest of each chunk payload.
	Digest bool `yaml:"digest"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Print: PrintConfig{
			Format: string(report.FormatText),
		},
	}
}

// Load resolves the configuration file from path or $PNGME_CONFIG and
// loads it. With neither set it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the YAML file at path over the defaults and validates
// the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against the values the commands accept.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	for _, name := range c.Encode.Filters {
		if _, err := filter.Lookup(name); err != nil {
			return fmt.Errorf("%w: encode.filters: %w", ErrInvalid, err)
		}
	}
	if c.Encode.ChunkType != "" {
		if _, err := png.ParseTypeCode(c.Encode.ChunkType); err != nil {
			return fmt.Errorf("%w: encode.chunk_type: %w", ErrInvalid, err)
		}
	}
	if _, err := report.ParseFormat(c.Print.Format); err != nil {
		return fmt.Errorf("%w: print.format: %w", ErrInvalid, err)
	}
	return nil
}

// Level returns the configured log level. It assumes Validate passed and
// falls back to warn otherwise.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q (want debug, info, warn or error)", ErrInvalid, s)
	}
	return level, nil
}
