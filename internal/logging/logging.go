// Package logging holds the process-wide zap logger used by the engine.
// It discards everything until a logger is installed with Set.
package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the current logger.
func L() *zap.Logger {
	return current.Load()
}

// Set installs l as the process-wide logger. A nil logger restores the
// no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	current.Store(l)
}

// Named returns a child of the current logger for one component.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// New builds a logger writing to stderr at the given level
// ("debug", "info", "warn", "error").
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
