package output

import (
	"testing"
)

func TestColorSchemes(t *testing.T) {
	// Test DefaultColorScheme
	defaultScheme := DefaultColorScheme()
	if defaultScheme.Usage == nil {
		t.Error("DefaultColorScheme.Usage should not be nil")
	}
	if defaultScheme.Error == nil {
		t.Error("DefaultColorScheme.Error should not be nil")
	}

	// Test NoColorScheme
	noColorScheme := NoColorScheme()
	if noColorScheme.Usage == nil {
		t.Error("NoColorScheme.Usage should not be nil")
	}
	if noColorScheme.Error == nil {
		t.Error("NoColorScheme.Error should not be nil")
	}

	// A disabled scheme must render the bare token with no escape codes.
	if got := noColorScheme.Error.Sprint("Error:"); got != "Error:" {
		t.Errorf("NoColorScheme.Error.Sprint(\"Error:\") = %q, want %q", got, "Error:")
	}
}
