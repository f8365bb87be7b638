package graphics

import (
	"context"
	"fmt"
	"sync"

	"github.com/dirkcgrunwald/remi-graphics/backend"
	// Registers the browser canvas so the default window works out of
	// the box.
	_ "github.com/dirkcgrunwald/remi-graphics/backend/browser"
	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

// Default window dimensions, used when NewGraphWin is given zero or
// negative sizes.
const (
	DefaultWidth  = 600
	DefaultHeight = 600
)

// DefaultTitle is used when NewGraphWin is given an empty title.
const DefaultTitle = "Graphics Window"

// GraphWin is a toplevel window for displaying graphics. It is a thin
// façade over a backend.Canvas: shapes draw themselves by appending SVG
// elements through the window, and mouse and key input flows back from
// the canvas event stream.
//
// A GraphWin is safe for concurrent use, though the typical teaching
// program drives it from a single goroutine.
type GraphWin struct {
	canvas backend.Canvas

	mu        sync.Mutex
	width     int
	height    int
	trans     *Transform
	autoflush bool
	closed    bool
	dead      bool // canvas event stream ended before Close

	lastClick *backend.Event
	lastKey   string
	inputs    map[string]string

	clicks chan backend.Event
	keys   chan string

	closeOnce sync.Once
	done      chan struct{}
}

// NewGraphWin opens a graphics window with the given title and pixel
// dimensions. It blocks until the display reports ready or the start
// timeout elapses; a display that never comes up yields ErrDeadSession.
func NewGraphWin(title string, width, height int, opts ...WinOption) (*GraphWin, error) {
	if title == "" {
		title = DefaultTitle
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	o := defaultWinOptions()
	for _, opt := range opts {
		opt(&o)
	}

	canvas := o.canvas
	if canvas == nil {
		var err error
		canvas, err = backend.New(o.canvasName, backend.Config{
			Title:       title,
			Width:       width,
			Height:      height,
			Addr:        o.addr,
			OpenBrowser: o.openBrowser,
		})
		if err != nil {
			return nil, fmt.Errorf("graphics: open window: %w", err)
		}
	}
	propagateLogger(canvas, Logger())

	ctx, cancel := context.WithTimeout(context.Background(), o.startTimeout)
	defer cancel()
	if err := canvas.WaitReady(ctx); err != nil {
		canvas.Close()
		return nil, fmt.Errorf("%w: display not ready: %v", ErrDeadSession, err)
	}

	w := &GraphWin{
		canvas:    canvas,
		width:     width,
		height:    height,
		autoflush: o.autoflush,
		inputs:    make(map[string]string),
		clicks:    make(chan backend.Event, 16),
		keys:      make(chan string, 16),
		done:      make(chan struct{}),
	}
	go w.dispatch()
	return w, nil
}

// dispatch forwards canvas input events to waiting callers and the
// last-event slots read by CheckMouse and CheckKey.
func (w *GraphWin) dispatch() {
	for {
		select {
		case ev, ok := <-w.canvas.Events():
			if !ok {
				w.markDead()
				return
			}
			switch ev.Kind {
			case backend.EventClick:
				w.mu.Lock()
				click := ev
				w.lastClick = &click
				w.mu.Unlock()
				queueEvent(w.clicks, ev)
			case backend.EventKey:
				w.mu.Lock()
				w.lastKey = ev.Key
				w.mu.Unlock()
				queueEvent(w.keys, ev.Key)
			case backend.EventInput:
				w.mu.Lock()
				w.inputs[ev.TargetID] = ev.Value
				w.mu.Unlock()
			}
		case <-w.done:
			return
		}
	}
}

// queueEvent appends to a buffered channel, dropping the oldest entry
// when full. Input waits care about recent events, not a full history.
func queueEvent[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func (w *GraphWin) markDead() {
	w.mu.Lock()
	// A stream that ends after Close is a normal shutdown, not a death.
	if !w.closed {
		w.dead = true
		w.closed = true
	}
	w.mu.Unlock()
	w.closeOnce.Do(func() { close(w.done) })
}

// Width returns the width of the window in pixels.
func (w *GraphWin) Width() int { return w.width }

// Height returns the height of the window in pixels.
func (w *GraphWin) Height() int { return w.height }

// Canvas returns the canvas the window draws onto.
func (w *GraphWin) Canvas() backend.Canvas { return w.canvas }

// SetCoords installs a world coordinate system running from (x1, y1)
// in the lower-left corner to (x2, y2) in the upper-right corner.
func (w *GraphWin) SetCoords(x1, y1, x2, y2 float64) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if x1 == x2 || y1 == y2 {
		return fmt.Errorf("%w: empty coordinate span", ErrBadOption)
	}
	if w.width <= 1 || w.height <= 1 {
		return fmt.Errorf("%w: window too small for coordinates", ErrBadOption)
	}
	t := NewTransform(w.width, w.height, x1, y1, x2, y2)
	w.mu.Lock()
	w.trans = &t
	w.mu.Unlock()
	return nil
}

// SetBackground sets the window background color.
func (w *GraphWin) SetBackground(color string) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if color == "" || !IsColor(color) {
		return fmt.Errorf("%w: color %q", ErrBadOption, color)
	}
	if err := w.canvas.SetBackground(color); err != nil {
		return fmt.Errorf("graphics: set background: %w", err)
	}
	return w.autoflushPush()
}

// SetTitle sets the window title.
func (w *GraphWin) SetTitle(title string) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if err := w.canvas.SetTitle(title); err != nil {
		return fmt.Errorf("graphics: set title: %w", err)
	}
	return w.autoflushPush()
}

// Plot sets the pixel at world coordinates (x, y) to the given color.
func (w *GraphWin) Plot(x, y float64, color string) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if !IsColor(color) {
		return fmt.Errorf("%w: color %q", ErrBadOption, color)
	}
	xs, ys := w.toScreen(x, y)
	return w.plotPixel(xs, ys, color)
}

// PlotPixel sets the raw screen pixel (x, y) to the given color,
// independent of any world coordinate system.
func (w *GraphWin) PlotPixel(x, y int, color string) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if !IsColor(color) {
		return fmt.Errorf("%w: color %q", ErrBadOption, color)
	}
	return w.plotPixel(x, y, color)
}

func (w *GraphWin) plotPixel(x, y int, color string) error {
	e := svgdom.NewLine(x, y, x+1, y).SetAttr("stroke", color)
	if err := w.canvas.Append(e); err != nil {
		return fmt.Errorf("graphics: plot: %w", err)
	}
	return w.autoflushPush()
}

// Flush pushes any buffered drawing to the display.
func (w *GraphWin) Flush() error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	return w.canvas.Flush()
}

// Update pushes any buffered drawing to the display. It is an alias
// for Flush kept for programs ported from the classic API.
func (w *GraphWin) Update() error { return w.Flush() }

// Close shuts the window down. Close is idempotent; drawing operations
// on a closed window return ErrWindowClosed.
func (w *GraphWin) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.closeOnce.Do(func() { close(w.done) })
	return w.canvas.Close()
}

// IsClosed reports whether the window has been closed, either by Close
// or because the display session died.
func (w *GraphWin) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// IsOpen reports whether the window is still open.
func (w *GraphWin) IsOpen() bool { return !w.IsClosed() }

func (w *GraphWin) checkOpen() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dead {
		return ErrDeadSession
	}
	if w.closed {
		return ErrWindowClosed
	}
	return nil
}

// ToScreen converts world coordinates to raw screen coordinates. With
// no coordinate system installed, positions pass through unchanged.
func (w *GraphWin) ToScreen(x, y float64) (int, int) { return w.toScreen(x, y) }

// ToWorld converts raw screen coordinates to world coordinates. With
// no coordinate system installed, positions pass through unchanged.
func (w *GraphWin) ToWorld(x, y float64) (float64, float64) { return w.toWorld(x, y) }

func (w *GraphWin) toScreen(x, y float64) (int, int) {
	w.mu.Lock()
	t := w.trans
	w.mu.Unlock()
	if t == nil {
		return int(x + 0.5), int(y + 0.5)
	}
	return t.Screen(x, y)
}

func (w *GraphWin) toWorld(x, y float64) (float64, float64) {
	w.mu.Lock()
	t := w.trans
	w.mu.Unlock()
	if t == nil {
		return x, y
	}
	return t.World(x, y)
}

// screenDelta converts a world displacement to a screen displacement.
func (w *GraphWin) screenDelta(dx, dy float64) (float64, float64) {
	w.mu.Lock()
	t := w.trans
	w.mu.Unlock()
	if t == nil {
		return dx, dy
	}
	return t.ScreenDelta(dx, dy)
}

// autoflushPush flushes the canvas when autoflush is enabled.
func (w *GraphWin) autoflushPush() error {
	w.mu.Lock()
	auto := w.autoflush
	closed := w.closed
	w.mu.Unlock()
	if !auto || closed {
		return nil
	}
	return w.canvas.Flush()
}

// inputValue returns the latest browser-side value for an input
// element, if one has been reported.
func (w *GraphWin) inputValue(id string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	v, ok := w.inputs[id]
	return v, ok
}

// GetMouse waits for a mouse click and returns its position in world
// coordinates. Clicks that happened before the call are discarded.
func (w *GraphWin) GetMouse() (*Point, error) {
	return w.GetMouseContext(context.Background())
}

// GetMouseContext is GetMouse with a caller-supplied context.
func (w *GraphWin) GetMouseContext(ctx context.Context) (*Point, error) {
	if err := w.checkOpen(); err != nil {
		return nil, err
	}
	w.mu.Lock()
	w.lastClick = nil
	w.mu.Unlock()
	drain(w.clicks)

	select {
	case ev := <-w.clicks:
		// This read consumes the stored last click too, unless a newer
		// click arrived in the meantime.
		w.mu.Lock()
		if w.lastClick != nil && *w.lastClick == ev {
			w.lastClick = nil
		}
		w.mu.Unlock()
		x, y := w.toWorld(float64(ev.X), float64(ev.Y))
		return NewPoint(x, y), nil
	case <-w.done:
		return nil, w.closeErr()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CheckMouse returns the position of the last unread mouse click in
// world coordinates, or nil if the mouse has not been clicked since the
// last read.
func (w *GraphWin) CheckMouse() (*Point, error) {
	if err := w.checkOpen(); err != nil {
		return nil, err
	}
	w.mu.Lock()
	ev := w.lastClick
	w.lastClick = nil
	w.mu.Unlock()
	if ev == nil {
		return nil, nil
	}
	x, y := w.toWorld(float64(ev.X), float64(ev.Y))
	return NewPoint(x, y), nil
}

// GetKey waits for a key press and returns the key name. Presses that
// happened before the call are discarded.
func (w *GraphWin) GetKey() (string, error) {
	return w.GetKeyContext(context.Background())
}

// GetKeyContext is GetKey with a caller-supplied context.
func (w *GraphWin) GetKeyContext(ctx context.Context) (string, error) {
	if err := w.checkOpen(); err != nil {
		return "", err
	}
	w.mu.Lock()
	w.lastKey = ""
	w.mu.Unlock()
	drain(w.keys)

	select {
	case k := <-w.keys:
		// This read consumes the stored last key too, unless a newer
		// press arrived in the meantime.
		w.mu.Lock()
		if w.lastKey == k {
			w.lastKey = ""
		}
		w.mu.Unlock()
		return k, nil
	case <-w.done:
		return "", w.closeErr()
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// CheckKey returns the last unread key press, or "" if no key has been
// pressed since the last read.
func (w *GraphWin) CheckKey() (string, error) {
	if err := w.checkOpen(); err != nil {
		return "", err
	}
	w.mu.Lock()
	k := w.lastKey
	w.lastKey = ""
	w.mu.Unlock()
	return k, nil
}

func (w *GraphWin) closeErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dead {
		return ErrDeadSession
	}
	return ErrWindowClosed
}

func drain[T any](ch chan T) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
