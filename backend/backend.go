package backend

import (
	"context"
	"errors"

	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

// Common canvas errors.
var (
	// ErrCanvasNotAvailable is returned when a requested canvas is not available.
	ErrCanvasNotAvailable = errors.New("backend: canvas not available")

	// ErrCanvasClosed is returned when operations are called after Close.
	ErrCanvasClosed = errors.New("backend: canvas closed")

	// ErrUnknownElement is returned when an update or removal names an
	// element id the canvas has never seen.
	ErrUnknownElement = errors.New("backend: unknown element")
)

// EventKind identifies the kind of input event a canvas delivers.
type EventKind int

const (
	// EventClick is a mouse click on the drawing surface.
	EventClick EventKind = iota
	// EventKey is a key press while the window has focus.
	EventKey
	// EventInput is a value change in an embedded input element.
	EventInput
)

// Event is an input event originating from the display.
type Event struct {
	Kind EventKind

	// X, Y are the click position in raw screen (pixel) coordinates.
	// Valid for EventClick.
	X, Y int

	// Key is the pressed key name. Valid for EventKey.
	Key string

	// TargetID is the id of the element the event relates to.
	// Valid for EventInput.
	TargetID string

	// Value is the new input value. Valid for EventInput.
	Value string
}

// Config carries the window parameters a canvas is created with.
type Config struct {
	Title  string
	Width  int
	Height int

	// Addr is the listen address for canvases that host a display server.
	// Empty means the canvas default.
	Addr string

	// OpenBrowser tells display-hosting canvases to launch the system
	// browser at the window URL once serving.
	OpenBrowser bool
}

// Canvas is the surface drawing calls are translated onto. Implementations
// hold an SVG element tree and deliver input events from the display.
//
// Mutations (Append, Update, Remove, SetTitle, SetBackground) may be
// buffered; Flush pushes any pending changes to the display. All methods
// are safe for concurrent use.
type Canvas interface {
	// WaitReady blocks until the display side of the canvas has finished
	// initializing, the context is done, or the canvas is closed.
	WaitReady(ctx context.Context) error

	// Append adds an element to the drawing surface.
	Append(e *svgdom.Element) error

	// Update replaces attributes and style properties of a drawn element.
	// Entries with empty values remove the attribute or property.
	Update(id string, attrs, style map[string]string) error

	// UpdateText replaces the character data of a drawn element, e.g.
	// the content of a text element or the value of an input.
	UpdateText(id, text string) error

	// Remove takes a drawn element off the surface.
	Remove(id string) error

	// SetTitle sets the window title.
	SetTitle(title string) error

	// SetBackground sets the surface background color.
	SetBackground(color string) error

	// Flush pushes buffered mutations to the display.
	Flush() error

	// Events returns the stream of input events. The channel is closed
	// when the canvas closes.
	Events() <-chan Event

	// Close shuts the canvas down and releases its resources.
	// Close is idempotent.
	Close() error
}
