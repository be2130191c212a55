// Package logger provides structured logging using the Uber zap library.
package logger

import "go.uber.org/zap"

// Log is the global SugaredLogger. It defaults to a no-op logger so that
// packages can log before Init runs (and tests need no setup); Init replaces
// it with a real logger at the configured level.
var Log = zap.NewNop().Sugar()

// Init configures the global logger with the given level.
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
