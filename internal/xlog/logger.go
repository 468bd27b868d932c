// Package xlog provides the small shared logger the harness and the
// cmd/lockbench driver use for "log it and keep going" events, like a
// refused CPU pin or a completed sweep cell. It is deliberately
// much smaller than a general-purpose logging package: no file rotation,
// no JSON option, no global Init/Close lifecycle. A benchmark run is a
// single short-lived process writing a handful of lines to stderr.
package xlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	logger  *slog.Logger
	initOne sync.Once
)

// SetLevel (re)configures the default logger's minimum level. Safe to call
// before or during a run; takes effect for subsequent log calls.
func SetLevel(level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Default returns the shared logger, lazily initializing it at Info level
// on first use.
func Default() *slog.Logger {
	initOne.Do(func() {
		mu.Lock()
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		}
		mu.Unlock()
	})
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
