package graphics

import (
	"time"

	"github.com/dirkcgrunwald/remi-graphics/backend"
)

// DefaultStartTimeout bounds how long NewGraphWin waits for the display
// to become ready.
const DefaultStartTimeout = 60 * time.Second

// WinOption configures a GraphWin during creation.
//
// Example:
//
//	// Default browser display
//	win, err := graphics.NewGraphWin("demo", 600, 600)
//
//	// Injected canvas (e.g. headless, for tests)
//	win, err := graphics.NewGraphWin("demo", 600, 600, graphics.WithCanvas(h))
type WinOption func(*winOptions)

// winOptions holds optional configuration for window creation.
type winOptions struct {
	canvas       backend.Canvas
	canvasName   string
	addr         string
	autoflush    bool
	openBrowser  bool
	startTimeout time.Duration
}

// defaultWinOptions returns the default window options.
func defaultWinOptions() winOptions {
	return winOptions{
		autoflush:    true,
		openBrowser:  true,
		startTimeout: DefaultStartTimeout,
	}
}

// WithCanvas draws the window onto an existing canvas instead of
// creating one. Useful for dependency injection in tests.
func WithCanvas(c backend.Canvas) WinOption {
	return func(o *winOptions) {
		o.canvas = c
	}
}

// WithCanvasName selects a registered canvas backend by name, e.g.
// backend.CanvasHeadless. The default is the best available canvas.
func WithCanvasName(name string) WinOption {
	return func(o *winOptions) {
		o.canvasName = name
	}
}

// WithAddress sets the listen address of a display-hosting canvas,
// e.g. "0.0.0.0:8081" to reach the window from another machine.
func WithAddress(addr string) WinOption {
	return func(o *winOptions) {
		o.addr = addr
	}
}

// WithAutoflush controls whether every drawing operation is pushed to
// the display immediately (the default). When disabled, changes are
// batched until Flush is called.
func WithAutoflush(auto bool) WinOption {
	return func(o *winOptions) {
		o.autoflush = auto
	}
}

// WithOpenBrowser controls whether the system browser is launched at
// the window URL (the default). Disable when the page will be opened
// by hand or from another machine.
func WithOpenBrowser(open bool) WinOption {
	return func(o *winOptions) {
		o.openBrowser = open
	}
}

// WithStartTimeout bounds how long NewGraphWin waits for the display to
// become ready before failing with ErrDeadSession.
func WithStartTimeout(d time.Duration) WinOption {
	return func(o *winOptions) {
		o.startTimeout = d
	}
}
