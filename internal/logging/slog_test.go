package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewFromLevel("warn", &buf)
	ctx := context.Background()

	log.Debug(ctx, "dbg")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn", "step", 1)
	log.Error(ctx, "err", "status", 500)

	out := buf.String()
	assert.NotContains(t, out, "msg=dbg")
	assert.NotContains(t, out, "msg=inf")
	assert.Contains(t, out, "level=WARN msg=wrn step=1")
	assert.Contains(t, out, "level=ERROR msg=err status=500")
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewFromLevel("debug", &buf)

	log.With("request_id", "abc").Debug(context.Background(), "upload", "file", "a.drawio")

	out := buf.String()
	for _, s := range []string{"level=DEBUG", "msg=upload", "request_id=abc", "file=a.drawio"} {
		assert.Contains(t, out, s)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	log := Discard()
	log.Info(context.TODO(), "nothing")
	log.With("k", "v").Error(context.TODO(), "still nothing")
}
