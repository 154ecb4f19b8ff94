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

	l.Info("fetching fixture data", Fields{"club_id": "club-1"})

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", entry["level"])
	}
	if entry["message"] != "fetching fixture data" {
		t.Errorf("unexpected message: %v", entry["message"])
	}
	fields := entry["fields"].(map[string]any)
	if fields["club_id"] != "club-1" {
		t.Errorf("expected club_id field, got %v", fields)
	}
	if entry["timestamp"] == "" {
		t.Error("expected a timestamp")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("visible", nil)
	l.Error("visible", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "boom") {
		t.Errorf("expected error detail in log line, got %s", lines[1])
	}
}

func TestCounters(t *testing.T) {
	c := NewCounters()
	c.Incr("extract.attempt.json")
	c.Incr("extract.attempt.json")
	c.Incr("extract.yield.rows")

	snap := c.Snapshot()
	if snap["extract.attempt.json"] != 2 {
		t.Errorf("expected counter at 2, got %d", snap["extract.attempt.json"])
	}
	if snap["extract.yield.rows"] != 1 {
		t.Errorf("expected counter at 1, got %d", snap["extract.yield.rows"])
	}

	names := c.Names()
	if len(names) != 2 || names[0] != "extract.attempt.json" {
		t.Errorf("expected sorted names, got %v", names)
	}

	// Snapshot is a copy.
	snap["extract.attempt.json"] = 99
	if c.Snapshot()["extract.attempt.json"] != 2 {
		t.Error("mutating a snapshot should not affect the counters")
	}
}
