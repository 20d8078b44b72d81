// Package log provides the shared structured logger.
package log

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once       sync.Once
	logger     *zap.SugaredLogger
	syncLogger = func() error { return nil }
	verbose    bool
)

// SetVerbose enables debug-level output. Must be called before the first
// Logger call to take effect.
func SetVerbose(v bool) {
	verbose = v
}

// Logger returns a lazily initialised structured logger.
func Logger() *zap.SugaredLogger {
	once.Do(func() {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if !verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}

		base, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		logger = base.Sugar()
		syncLogger = base.Sync
	})

	return logger
}

// Sync flushes any buffered log entries.
func Sync() error {
	if err := syncLogger(); err != nil {
		if strings.Contains(err.Error(), "bad file descriptor") {
			return nil
		}
		return err
	}
	return nil
}
