// Package logger builds the diagnostic logger enabled by --verbose. Regular
// progress output does not go through it.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names.
const (
	FieldKind    = "kind"
	FieldName    = "name"
	FieldPath    = "path"
	FieldCommand = "command"
)

// New returns a console logger writing debug-level entries to w when
// verbose is set, and a no-op logger otherwise.
func New(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core)
}
