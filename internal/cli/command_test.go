package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "pngme",
		Subcommands: []*Command{
			{Name: "encode", Run: func(args []string) error { called = "encode"; return nil }},
			{Name: "decode", Run: func(args []string) error { called = "decode"; return nil }},
		},
	}

	if err := root.Execute([]string{"decode"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "decode" {
		t.Errorf("dispatched to %q, want %q", called, "decode")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var file string
	var rest []string

	command := &Command{
		Name: "print",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("print", pflag.ContinueOnError)
			flagSet.StringVarP(&file, "file", "f", "", "file")
			return flagSet
		},
		Run: func(args []string) error {
			rest = args
			return nil
		},
	}

	if err := command.Execute([]string{"-f", "dice.png", "extra"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if file != "dice.png" {
		t.Errorf("file = %q, want %q", file, "dice.png")
	}
	if len(rest) != 1 || rest[0] != "extra" {
		t.Errorf("args = %v, want [extra]", rest)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:        "pngme",
		Output:      &help,
		Subcommands: []*Command{{Name: "print", Summary: "List chunks"}},
	}

	err := root.Execute(nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Fatalf("expected subcommand required error, got %v", err)
	}
	if !strings.Contains(help.String(), "print") || !strings.Contains(help.String(), "List chunks") {
		t.Errorf("help output missing command listing:\n%s", help.String())
	}
}

func TestCommand_PrintHelp_FullName(t *testing.T) {
	var help bytes.Buffer
	child := &Command{Name: "remove"}
	root := &Command{Name: "pngme", Output: &help, Subcommands: []*Command{child}}

	if err := root.Execute([]string{"remove", "--help"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(help.String(), "pngme remove [flags]") {
		t.Errorf("help output missing full usage:\n%s", help.String())
	}
}
