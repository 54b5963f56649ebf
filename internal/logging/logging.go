// Package logging provides the shared zap logger for malsum.
//
// A TUI owns the terminal, so logs go to a file under the config directory
// instead of stderr. Logging is a no-op unless MALSUM_DEBUG is set; failures
// the user never needs to act on (share-token decode, clipboard) are logged
// here rather than surfaced.
package logging

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/daehopark/malsum/internal/config"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// L returns the process-wide logger, initializing it on first use.
func L() *zap.Logger {
	once.Do(func() {
		logger = build()
	})
	return logger
}

// S returns the sugared form of L.
func S() *zap.SugaredLogger {
	return L().Sugar()
}

func build() *zap.Logger {
	if os.Getenv("MALSUM_DEBUG") == "" {
		return zap.NewNop()
	}

	configDir, err := config.EnsureConfigDir()
	if err != nil {
		return zap.NewNop()
	}

	logPath := filepath.Join(configDir, "malsum.log")
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zap.NewNop()
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(file),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// Sync flushes any buffered log entries. Safe to call on exit.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
