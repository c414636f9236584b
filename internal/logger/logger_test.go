package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("record skipped", Fields{"source": "velvet-elk", "reason": "invalid"})

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v (%q)", err, line)
	}

	if entry["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", entry["level"])
	}
	if entry["message"] != "record skipped" {
		t.Errorf("expected message, got %v", entry["message"])
	}
	fields, ok := entry["fields"].(map[string]interface{})
	if !ok || fields["source"] != "velvet-elk" {
		t.Errorf("expected structured fields, got %v", entry["fields"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)
	l.Error("shown", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[1], "boom") {
		t.Errorf("expected error text in entry, got %q", lines[1])
	}
}

func TestSetDefaultRoutesPackageFunctions(t *testing.T) {
	orig := defaultLogger
	defer SetDefault(orig)

	var buf bytes.Buffer
	SetDefault(New(LevelDebug, &buf))

	Debug("one", nil)
	Info("two", nil)
	Warn("three", nil)
	Error("four", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines through the default logger, got %d", len(lines))
	}
	if !strings.Contains(lines[3], "boom") {
		t.Errorf("expected error text in entry, got %q", lines[3])
	}
}

func TestCounters(t *testing.T) {
	c := NewCounters()

	c.Incr("invalid_records")
	c.Incr("invalid_records")
	c.Add("duplicates", 3)

	if got := c.Get("invalid_records"); got != 2 {
		t.Errorf("expected invalid_records=2, got %d", got)
	}
	if got := c.Get("duplicates"); got != 3 {
		t.Errorf("expected duplicates=3, got %d", got)
	}
	if got := c.Get("unknown"); got != 0 {
		t.Errorf("expected unknown counter to read 0, got %d", got)
	}

	snap := c.Snapshot()
	if len(snap) != 2 {
		t.Errorf("expected 2 counters in snapshot, got %v", snap)
	}

	// Snapshot is a copy
	snap["duplicates"] = 99
	if got := c.Get("duplicates"); got != 3 {
		t.Errorf("snapshot mutation leaked into counters: %d", got)
	}
}
