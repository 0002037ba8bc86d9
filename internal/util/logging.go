// Package util provides common utilities including logging helpers and
// file system locations.
package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a production zap logger. When logPath is non-empty all
// output goes to that file instead of stderr, which keeps a full-screen UI
// clean. verbose lowers the level to debug.
func NewLogger(logPath string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if logPath != "" {
		cfg.OutputPaths = []string{logPath}
		cfg.ErrorOutputPaths = []string{logPath}
	}
	return cfg.Build()
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		zap.L().Error(context, zap.Error(err))
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		zap.L().Fatal(context, zap.Error(err))
	}
}
