package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, slog.LevelInfo)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be enabled at info level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func TestHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug))

	logger.Info("quiz generated", "category", "ui-ux", "questions", 10)

	out := buf.String()
	for _, want := range []string{"INFO", "quiz generated", "category", "ui-ux", "questions", "10"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug)).With("user", "u-1")

	logger.Warn("limit nearly reached")

	out := buf.String()
	if !strings.Contains(out, "user") || !strings.Contains(out, "u-1") {
		t.Errorf("output missing bound attr: %q", out)
	}
}

func TestHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelWarn))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got: %q", buf.String())
	}

	logger.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("error should pass at warn level, got: %q", buf.String())
	}
}
