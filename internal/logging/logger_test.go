package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "DEBUG", want: LevelDebug},
		{input: "debug", want: LevelDebug},
		{input: "Info", want: LevelInfo},
		{input: "WARN", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "bogus", want: LevelInfo},
		{input: "", want: LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo)

	log.Info("round finished", "left", 10, "right", 10)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\noutput: %s", err, buf.String())
	}
	if entry["msg"] != "round finished" {
		t.Errorf("msg = %v, want %q", entry["msg"], "round finished")
	}
	if entry["left"] != float64(10) {
		t.Errorf("left = %v, want 10", entry["left"])
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo)

	log.Debug("iteration scored", "iteration", 0)

	if buf.Len() != 0 {
		t.Errorf("DEBUG message logged at INFO level: %s", buf.String())
	}
}

func TestWithGameAddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelDebug).WithGame("dilemma")

	log.Debug("round setup", "iterations", 2)

	if !strings.Contains(buf.String(), `"game":"dilemma"`) {
		t.Errorf("output missing game attribute: %s", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	// Must not panic or write anywhere.
	log.Error("ignored", "key", "value")
	log.With("a", 1).Info("also ignored")
}
