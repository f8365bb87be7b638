package graphics

import "errors"

// Errors reported by the graphics API.
var (
	// ErrObjectDrawn is returned when drawing an object that is already
	// visible in a window.
	ErrObjectDrawn = errors.New("graphics: object currently drawn")

	// ErrUnsupportedMethod is returned when a configuration option is
	// set on an object that does not support it.
	ErrUnsupportedMethod = errors.New("graphics: object doesn't support operation")

	// ErrBadOption is returned for illegal option values: unknown
	// colors, arrow styles, font faces, sizes out of range.
	ErrBadOption = errors.New("graphics: illegal option value")

	// ErrWindowClosed is returned for operations on a closed window.
	ErrWindowClosed = errors.New("graphics: window is closed")

	// ErrDeadSession is returned when the display session quit, or never
	// became ready, while the window still needed it.
	ErrDeadSession = errors.New("graphics: display session quit unexpectedly")
)
