// Package cli implements the pngme command tree.
//
// Each subcommand is a [Command] whose flags are declared with pflag and
// whose Run function receives the positional arguments left after flag
// parsing. Commands read and write through an [App] so tests can capture
// output without touching the process streams.
package cli
