package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("launching", "runtime", "/bin/true")
	if !strings.Contains(buf.String(), "launching") {
		t.Errorf("debug message missing: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "runtime=/bin/true") {
		t.Errorf("attr missing: %q", buf.String())
	}
}

func TestNewQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn message missing: %q", buf.String())
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	ctx := WithLogger(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Error("expected embedded logger")
	}
}

func TestFromContextDefault(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("expected slog.Default fallback")
	}
}
