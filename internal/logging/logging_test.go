package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/tidwall/gjson"
)

func TestNewDefaultsToErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("default logger emitted below error level: %q", buf.String())
	}

	logger.Error("visible")
	if buf.Len() == 0 {
		t.Error("default logger dropped an error-level record")
	}
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
	}{
		{level: "debug", enabled: slog.LevelDebug},
		{level: "info", enabled: slog.LevelInfo},
		{level: "warn", enabled: slog.LevelWarn},
		{level: "error", enabled: slog.LevelError},
		{level: "bogus", enabled: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(&bytes.Buffer{}, Options{Level: tt.level})

			ctx := context.Background()
			if !logger.Enabled(ctx, tt.enabled) {
				t.Errorf("level %q: expected %v to be enabled", tt.level, tt.enabled)
			}
			if logger.Enabled(ctx, tt.enabled-1) {
				t.Errorf("level %q: expected %v to be disabled", tt.level, tt.enabled-1)
			}
		})
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "debug", Format: "json"})

	logger.Debug("operand parsed", "token", "2.5", "value", 2.5)

	line := buf.String()
	if !gjson.Valid(line) {
		t.Fatalf("JSON logger emitted invalid JSON: %q", line)
	}
	if got := gjson.Get(line, "msg").String(); got != "operand parsed" {
		t.Errorf("msg = %q, want %q", got, "operand parsed")
	}
	if got := gjson.Get(line, "token").String(); got != "2.5" {
		t.Errorf("token = %q, want %q", got, "2.5")
	}
	if got := gjson.Get(line, "value").Float(); got != 2.5 {
		t.Errorf("value = %v, want 2.5", got)
	}
}
