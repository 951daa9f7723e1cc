package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(WrapByErrFmtHandler(handler))
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	err := errors.New("boom")
	logger.Error("operation failed", ErrAttr(err))

	out := buf.String()
	if !strings.Contains(out, `"`+ErrAttrKey+`"`) {
		t.Errorf("output missing error attribute: %s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("output missing error message: %s", out)
	}
	if !strings.Contains(out, `"`+StacktraceAttrKey+`"`) {
		t.Errorf("output missing stacktrace attribute: %s", out)
	}
	// スタックトレースにはこのテストファイル名が含まれる
	if !strings.Contains(out, "handler_test.go") {
		t.Errorf("stacktrace should reference the call site: %s", out)
	}
}

func TestErrFmtHandlerNoStacktraceWithoutError(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.Info("plain message", slog.String(StrategyKey, "mean"))

	out := buf.String()
	if strings.Contains(out, `"`+StacktraceAttrKey+`"`) {
		t.Errorf("unexpected stacktrace attribute: %s", out)
	}
	if !strings.Contains(out, "plain message") {
		t.Errorf("output missing message: %s", out)
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLogLevel(tt.level); got != tt.want {
				t.Errorf("ToLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestToLogLevelPanicsOnUnknown(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("ToLogLevel should panic on an unknown level")
		}
	}()
	ToLogLevel("verbose")
}
