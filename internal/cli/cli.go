// Package cli implements the addup invocation contract: exactly two operands
// in, one line out. Validation failures print a fixed diagnostic on stdout
// and map to a non-zero exit code; the process never retries or prompts.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/wesleyorama2/addup/internal/calc"
	"github.com/wesleyorama2/addup/internal/output"
)

// version is stamped at build time via ldflags. There is no surface to print
// it on, so it only shows up in debug traces.
var version = "0.1.0"

// Exit codes returned by App.Run. Both failure kinds share a single code.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// UsageError reports an invocation that did not carry exactly two operands.
// It is rendered as the usage line; the observed count exists for debug
// logging only.
type UsageError struct {
	Count int
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return "expected exactly 2 arguments"
}

// Options configures an App. It is the entire configuration surface: there
// are no flags, environment variables, or files behind it.
type Options struct {
	// Prog is the program name shown in the usage line. Defaults to "addup".
	Prog string

	// Renderer writes the result and diagnostic lines. Defaults to an
	// uncolored renderer on os.Stdout.
	Renderer *output.Renderer

	// Logger receives debug traces of the run. Defaults to a disabled logger.
	Logger *slog.Logger
}

// App is the calculator CLI.
type App struct {
	prog     string
	renderer *output.Renderer
	logger   *slog.Logger
}

// New creates an App from the given options, filling in defaults for any
// zero-valued field.
func New(opts Options) *App {
	if opts.Prog == "" {
		opts.Prog = "addup"
	}
	if opts.Renderer == nil {
		opts.Renderer = output.NewRenderer(os.Stdout, true)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &App{
		prog:     opts.Prog,
		renderer: opts.Renderer,
		logger:   opts.Logger,
	}
}

// Run executes one invocation over args, the command-line arguments without
// the program name. It writes exactly one line through the renderer and
// returns the process exit code: usage line and ExitFailure when the count is
// wrong, the fixed error line and ExitFailure when an operand is not numeric,
// the sum and ExitSuccess otherwise.
func (a *App) Run(args []string) int {
	a.logger.Debug("inspecting invocation", "version", version, "argc", len(args), "args", args)

	if len(args) != 2 {
		err := &UsageError{Count: len(args)}
		a.logger.Debug("argument count rejected", "error", err.Error(), "argc", err.Count)
		a.renderer.Usage(a.prog)
		return ExitFailure
	}

	// Parse both operands before reporting so debug traces name every
	// failure, even though the printed message never does.
	x, errX := calc.ParseOperand(args[0])
	y, errY := calc.ParseOperand(args[1])
	if errX != nil || errY != nil {
		if errX != nil {
			a.logger.Debug("operand rejected", "position", 1, "error", errX.Error())
		}
		if errY != nil {
			a.logger.Debug("operand rejected", "position", 2, "error", errY.Error())
		}
		a.renderer.ArgumentError()
		return ExitFailure
	}

	sum := calc.Sum(x, y)
	a.logger.Debug("operands summed", "x", x, "y", y, "sum", sum)
	a.renderer.Result(sum)
	return ExitSuccess
}
