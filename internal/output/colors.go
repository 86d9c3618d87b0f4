package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for the diagnostic lines. Result lines
// are never colored so they survive piping byte-exact.
type ColorScheme struct {
	Usage *color.Color
	Error *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Usage: color.New(color.FgYellow, color.Bold),
		Error: color.New(color.FgRed, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	// Disable all colors
	scheme.Usage.DisableColor()
	scheme.Error.DisableColor()

	return scheme
}
