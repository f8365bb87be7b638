// Package backend provides a pluggable canvas abstraction.
//
// A Canvas is the surface the graphics façade translates drawing calls
// onto: it holds an SVG element tree and delivers mouse and keyboard
// events back from the display. The package allows multiple canvas
// implementations to coexist and be selected at runtime.
//
// # Canvas Registration
//
// Canvases are registered via init() functions and selected at runtime:
//
//	import _ "github.com/dirkcgrunwald/remi-graphics/backend/browser"
//
// # Canvas Selection
//
// Use Default() to get the best available canvas factory, or Get() to
// request a specific one by name:
//
//	// The default (best available) canvas
//	factory := backend.Default()
//
//	// Or a specific canvas
//	factory := backend.Get(backend.CanvasHeadless)
//
//	canvas, err := factory(backend.Config{Title: "demo", Width: 600, Height: 600})
//
// # Available Canvases
//
// - "browser": serves the window to a web browser (backend/browser)
// - "headless": in-memory element tree, no display (backend/headless)
package backend
