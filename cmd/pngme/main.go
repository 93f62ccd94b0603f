// Command pngme hides messages inside PNG files.
package main

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-pngme/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewApp(version).Root().Execute(os.Args[1:])
}
