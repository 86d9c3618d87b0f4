package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/wesleyorama2/addup/internal/cli"
	"github.com/wesleyorama2/addup/internal/logging"
	"github.com/wesleyorama2/addup/internal/output"
)

// Main is the entry point for the application
// It's exported to make it testable
func Main() int {
	return run(os.Stdout, os.Stderr, os.Args[1:])
}

func main() {
	os.Exit(Main())
}

// run encapsulates the main application logic for easier testing: tests
// drive it with buffers and argument slices instead of a real process.
func run(stdout, stderr io.Writer, args []string) int {
	// Color only when stdout is a real terminal, so piped output is
	// byte-identical to the documented literals.
	noColor := true
	if f, ok := stdout.(*os.File); ok {
		noColor = !output.IsTerminal(f)
	}

	// Error-level logger on stderr. Nothing in the contract emits at that
	// level, so stderr stays observably silent in a shipped build.
	logger := logging.New(stderr, logging.Options{Level: "error", NoColor: noColor})

	app := cli.New(cli.Options{
		Prog:     filepath.Base(os.Args[0]),
		Renderer: output.NewRenderer(stdout, noColor),
		Logger:   logger,
	})

	return app.Run(args)
}
