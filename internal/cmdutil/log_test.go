package cmdutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "warn": slog.LevelWarn, "error": slog.LevelError} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestWarnfRespectsQuiet(t *testing.T) {
	var b bytes.Buffer
	Warnf(NewLogger(&b, "info", false), "min %d > max %d", 5, 2)
	if !strings.Contains(b.String(), "level=WARN") || !strings.Contains(b.String(), "min 5 > max 2") {
		t.Fatalf("unexpected log line %q", b.String())
	}
	b.Reset()
	Warnf(NewLogger(&b, "debug", true), "hidden")
	if b.Len() != 0 {
		t.Fatalf("quiet logger printed %q", b.String())
	}
}

func TestProgressDisabledIsSilent(t *testing.T) {
	var b bytes.Buffer
	report, finish := Progress(&b, false)
	report(1, 2, "a")
	finish()
	if b.Len() != 0 {
		t.Fatalf("disabled progress wrote %q", b.String())
	}
}

func TestProgressWritesBar(t *testing.T) {
	var b bytes.Buffer
	report, finish := Progress(&b, true)
	report(1, 2, "a")
	report(2, 2, "b")
	finish()
	if !strings.Contains(b.String(), "scan") {
		t.Fatalf("expected a progress bar, got %q", b.String())
	}
}
