package playroom

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used by the engine. Passing nil restores the
// default, which follows slog.Default().
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

// logger returns the engine logger.
func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
