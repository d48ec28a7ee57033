package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// swapped in tests
var newLogger = NewLogger

// NewLogger builds the logger used by the command line. Entries are written to
// stderr as single console lines without timestamps or callers, so a failure
// reads as "FATAL <message> {"error": ...}" and stdout only carries command output.
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.CallerKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
