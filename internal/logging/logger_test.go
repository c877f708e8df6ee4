package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLevels(t *testing.T) {
	// Restore the process-wide logger after the test
	original := defaultLogger
	defer func() {
		defaultLogger = original
		slog.SetDefault(original)
	}()

	testCases := []struct {
		name       string
		level      string
		debugShown bool
	}{
		{
			name:       "Debug level shows debug output",
			level:      "debug",
			debugShown: true,
		},
		{
			name:       "Info level hides debug output",
			level:      "info",
			debugShown: false,
		},
		{
			name:       "Error level hides debug output",
			level:      "error",
			debugShown: false,
		},
		{
			name:       "Unknown level defaults to info",
			level:      "nonsense",
			debugShown: false,
		},
		{
			name:       "Empty level defaults to info",
			level:      "",
			debugShown: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(&buf, tc.level)

			Debug("debug message")

			shown := strings.Contains(buf.String(), "debug message")
			if shown != tc.debugShown {
				t.Errorf("debug output shown = %v, want %v (output: %s)",
					shown, tc.debugShown, buf.String())
			}
		})
	}
}

func TestSetupWritesToGivenWriter(t *testing.T) {
	original := defaultLogger
	defer func() {
		defaultLogger = original
		slog.SetDefault(original)
	}()

	var buf bytes.Buffer
	Setup(&buf, "info")

	Info("hello", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "hello") || !strings.Contains(output, "key=value") {
		t.Errorf("unexpected log output: %s", output)
	}
}

func TestMaskSensitive(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: "<not set>",
		},
		{
			name:     "Short string",
			input:    "abc",
			expected: "<set>",
		},
		{
			name:     "Exactly 4 characters",
			input:    "abcd",
			expected: "<set>",
		},
		{
			name:     "Token-like string",
			input:    "2Dn5j8fk39Dkf0s",
			expected: "2Dn5...***",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := MaskSensitive(tc.input)
			if result != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, result)
			}
		})
	}
}
