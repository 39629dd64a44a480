package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewVerboseWritesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug("file written", zap.String(FieldPath, "src/hooks/amazing/amazing.tsx"))
	_ = log.Sync()

	out := buf.String()
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "file written") {
		t.Errorf("expected debug entry, got %q", out)
	}
	if !strings.Contains(out, "src/hooks/amazing/amazing.tsx") {
		t.Errorf("expected path field, got %q", out)
	}
}

func TestNewQuietIsNop(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}
}
