package graphics

import (
	"log/slog"
	"sync/atomic"

	"github.com/dirkcgrunwald/remi-graphics/backend"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := backend.NopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for graphics and its canvases.
// By default the library produces no log output. Call SetLogger before
// creating windows; a window hands the current logger to its canvas at
// construction time.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore the silent default).
//
// Log levels used:
//   - [slog.LevelDebug]: patch traffic to the display
//   - [slog.LevelInfo]: session lifecycle (window serving, display connected)
//   - [slog.LevelWarn]: non-fatal issues (slow display, dropped events)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = backend.NopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by graphics.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by canvases that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes the logger to a canvas if it implements the
// loggerSetter interface. Called when a window adopts a canvas so the
// canvas shares the library's logger configuration.
func propagateLogger(c any, l *slog.Logger) {
	if ls, ok := c.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
