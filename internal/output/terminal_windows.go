//go:build windows

package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file is attached to a terminal on Windows.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
