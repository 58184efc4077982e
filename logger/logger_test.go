package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func captureLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &Config{Level: level, Format: FormatJSON, Timestamp: false}, "test")
	return l, &buf
}

func decodeLine(t *testing.T, line string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("bad log line %q: %v", line, err)
	}
	return m
}

func TestLevels(t *testing.T) {
	l, buf := captureLogger(t, "debug")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	wantLevels := []string{"debug", "info", "warn", "error"}
	for i, line := range lines {
		m := decodeLine(t, line)
		if m["level"] != wantLevels[i] {
			t.Errorf("line %d: level = %v, want %s", i, m["level"], wantLevels[i])
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := captureLogger(t, "warn")
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level leaked: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestLog_Unleveled(t *testing.T) {
	// Unleveled messages pass even when the level would filter info.
	l, buf := captureLogger(t, "error")
	l.Log("always")
	if !strings.Contains(buf.String(), "always") {
		t.Errorf("unleveled message filtered: %q", buf.String())
	}
}

func TestComponentField(t *testing.T) {
	l, buf := captureLogger(t, "info")
	l.Info("msg")
	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m[FieldComponent] != "test" {
		t.Errorf("component = %v, want test", m[FieldComponent])
	}
}

func TestWithFields(t *testing.T) {
	l, buf := captureLogger(t, "info")
	l.WithFields(map[string]interface{}{"task": "sync"}).Info("msg")
	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["task"] != "sync" {
		t.Errorf("task = %v, want sync", m["task"])
	}
}

func TestFieldsHelper(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if len(m) != 2 || m["a"] != 1 || m["b"] != "two" {
		t.Errorf("got %v", m)
	}
	// Odd trailing value is dropped, not a panic.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	l, buf := captureLogger(t, "info")
	l.Error("failed", ErrorFields("sync", errors.New("always broken")))
	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m[FieldOperation] != "sync" {
		t.Errorf("operation = %v, want sync", m[FieldOperation])
	}
	if m[FieldError] != "always broken" {
		t.Errorf("error = %v", m[FieldError])
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := &Config{Level: "loud", Format: FormatJSON, Output: "stdout"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
}
