package easel

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_Handle(t *testing.T) {
	h := nopHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
}

// TestSetLogger verifies engine operations log through the configured
// logger and that nil restores silence.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	e := NewEngine(16, 16)
	e.SetTool(ToolEraser)

	if !strings.Contains(buf.String(), "tool selected") {
		t.Errorf("expected a tool-selected debug record, got: %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	e.SetTool(ToolBrush)
	if buf.Len() != 0 {
		t.Errorf("logging after SetLogger(nil): %q", buf.String())
	}
}

// TestLoggerDefaultSilent checks the package default produces nothing.
func TestLoggerDefaultSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled; want silent no-op")
	}
}
