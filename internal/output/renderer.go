// Package output renders the three lines addup can ever print: the numeric
// result, the usage message, and the numeric-argument error. Exactly one of
// them is written per invocation, always to the same writer, always
// newline-terminated.
package output

import (
	"fmt"
	"io"
	"strconv"
)

// Renderer formats program output for display
type Renderer struct {
	Writer  io.Writer
	NoColor bool

	scheme *ColorScheme
}

// NewRenderer creates a new renderer with the given options
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}

	return &Renderer{
		Writer:  w,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// Result writes the computed sum using Go's shortest round-trip float
// representation: whole values carry no trailing ".0" (8, not 8.0), overflow
// renders as +Inf/-Inf, and NaN renders as NaN. Every form emitted here
// parses back through strconv.ParseFloat.
func (r *Renderer) Result(v float64) {
	fmt.Fprintln(r.Writer, strconv.FormatFloat(v, 'g', -1, 64))
}

// Usage writes the invocation hint for the given program name.
func (r *Renderer) Usage(prog string) {
	fmt.Fprintf(r.Writer, "%s %s <number1> <number2>\n", r.scheme.Usage.Sprint("Usage:"), prog)
}

// ArgumentError writes the fixed non-numeric-argument message. It does not
// say which argument failed; callers log that detail instead.
func (r *Renderer) ArgumentError() {
	fmt.Fprintf(r.Writer, "%s Both arguments must be numbers.\n", r.scheme.Error.Sprint("Error:"))
}
