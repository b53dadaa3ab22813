package algosparse

import (
	"log/slog"
	"sync"
)

var (
	loggerMu sync.RWMutex
	logger   *slog.Logger
)

// SetLogger installs a structured logger for CheckWarn. Passing nil restores
// the default (slog.Default at call time).
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func getLogger() *slog.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return slog.Default()
	}
	return l
}

// CheckWarn logs a non-success status instead of turning it into an error.
// Use it on paths that must not fail, such as cleanup. Success logs nothing.
func CheckWarn(call string, status Status) {
	if status == StatusSuccess {
		return
	}
	getLogger().Warn("sparse call failed",
		"call", call,
		"reason", int32(status),
		"status", status.String(),
	)
}
