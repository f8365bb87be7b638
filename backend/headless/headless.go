// Package headless provides an in-memory canvas with no display.
//
// The headless canvas records every mutation in an SVG element tree and
// lets tests synthesize input events. It is registered under the name
// "headless" and is selected automatically when no display-hosting
// canvas is available.
package headless

import (
	"context"
	"sync"

	"github.com/dirkcgrunwald/remi-graphics/backend"
	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

func init() {
	backend.Register(backend.CanvasHeadless, func(cfg backend.Config) (backend.Canvas, error) {
		return New(cfg), nil
	})
}

// Canvas is an in-memory implementation of backend.Canvas.
type Canvas struct {
	mu         sync.Mutex
	root       *svgdom.Element
	title      string
	background string
	flushes    int
	closed     bool

	events chan backend.Event
}

var _ backend.Canvas = (*Canvas)(nil)

// New creates a headless canvas for the given window configuration.
func New(cfg backend.Config) *Canvas {
	return &Canvas{
		root:   svgdom.NewSVG(cfg.Width, cfg.Height),
		title:  cfg.Title,
		events: make(chan backend.Event, 16),
	}
}

// WaitReady returns immediately: a headless canvas has no display to
// wait for.
func (c *Canvas) WaitReady(ctx context.Context) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return backend.ErrCanvasClosed
	}
	return ctx.Err()
}

// Append adds an element to the tree.
func (c *Canvas) Append(e *svgdom.Element) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	c.root.Append(e)
	return nil
}

// Update replaces attributes and style properties of a drawn element.
func (c *Canvas) Update(id string, attrs, style map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	e := c.root.Find(id)
	if e == nil {
		return backend.ErrUnknownElement
	}
	for k, v := range attrs {
		e.SetAttr(k, v)
	}
	for k, v := range style {
		e.SetStyle(k, v)
	}
	return nil
}

// UpdateText replaces the character data of a drawn element.
func (c *Canvas) UpdateText(id, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	e := c.root.Find(id)
	if e == nil {
		return backend.ErrUnknownElement
	}
	e.SetText(text)
	return nil
}

// Remove takes an element out of the tree.
func (c *Canvas) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	if !c.root.RemoveChild(id) {
		return backend.ErrUnknownElement
	}
	return nil
}

// SetTitle records the window title.
func (c *Canvas) SetTitle(title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	c.title = title
	return nil
}

// SetBackground records the surface background color.
func (c *Canvas) SetBackground(color string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	c.background = color
	return nil
}

// Flush counts flushes; there is no display to push to.
func (c *Canvas) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return backend.ErrCanvasClosed
	}
	c.flushes++
	return nil
}

// Events returns the synthesized input event stream.
func (c *Canvas) Events() <-chan backend.Event { return c.events }

// Close shuts the canvas down. Close is idempotent.
func (c *Canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.events)
	return nil
}

// SendClick synthesizes a mouse click at raw screen coordinates.
func (c *Canvas) SendClick(x, y int) {
	c.send(backend.Event{Kind: backend.EventClick, X: x, Y: y})
}

// SendKey synthesizes a key press.
func (c *Canvas) SendKey(key string) {
	c.send(backend.Event{Kind: backend.EventKey, Key: key})
}

// SendInput synthesizes an input value change for the element id.
func (c *Canvas) SendInput(id, value string) {
	c.send(backend.Event{Kind: backend.EventInput, TargetID: id, Value: value})
}

func (c *Canvas) send(ev backend.Event) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}
	c.events <- ev
}

// Find returns the element with the given id, or nil.
func (c *Canvas) Find(id string) *svgdom.Element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Find(id)
}

// Markup renders the current element tree.
func (c *Canvas) Markup() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.root.Render()
}

// Title returns the recorded window title.
func (c *Canvas) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

// Background returns the recorded background color.
func (c *Canvas) Background() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.background
}

// Flushes returns how many times Flush has been called.
func (c *Canvas) Flushes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushes
}
