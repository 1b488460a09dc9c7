// Package logger holds the process-wide logger used by the CLI and
// the emitters.
package logger

import (
	"go.uber.org/zap"
)

// Logger is the global sugared logger.
var Logger *zap.SugaredLogger

func init() {
	// No-op until Initialize runs, so early callers never hit a nil
	// logger.
	Logger = zap.NewNop().Sugar()
}

// Initialize builds the global logger. Verbose selects the human
// oriented development config with debug level enabled; otherwise a
// production config at info level is used.
func Initialize(verbose bool) error {
	var (
		zl  *zap.Logger
		err error
	)
	if verbose {
		zl, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zl, err = cfg.Build()
	}
	if err != nil {
		return err
	}
	Logger = zl.Sugar()
	return nil
}

// Cleanup flushes buffered log entries.
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Debugw logs a debug message with structured fields.
func Debugw(msg string, keysAndValues ...interface{}) {
	Logger.Debugw(msg, keysAndValues...)
}

// Infow logs an info message with structured fields.
func Infow(msg string, keysAndValues ...interface{}) {
	Logger.Infow(msg, keysAndValues...)
}

// Warnw logs a warning message with structured fields.
func Warnw(msg string, keysAndValues ...interface{}) {
	Logger.Warnw(msg, keysAndValues...)
}

// Errorw logs an error message with structured fields.
func Errorw(msg string, keysAndValues ...interface{}) {
	Logger.Errorw(msg, keysAndValues...)
}
