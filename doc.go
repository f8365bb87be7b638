// Package graphics provides a simple teaching-oriented 2D graphics library.
//
// # Overview
//
// graphics mimics the classic Zelle graphics API: a GraphWin window,
// shape objects (Point, Line, Circle, Oval, Rectangle, Polygon, Text,
// Entry), an optional world-coordinate system, and mouse input. Instead
// of a native toolkit, drawing calls are translated into SVG elements
// hosted in a browser window served over HTTP.
//
// # Quick Start
//
//	import "github.com/dirkcgrunwald/remi-graphics"
//
//	win, err := graphics.NewGraphWin("My Circle", 100, 100)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer win.Close()
//
//	c := graphics.NewCircle(graphics.NewPoint(50, 50), 10)
//	c.Draw(win)
//
//	win.GetMouse() // pause to view the result
//
// # Coordinate Systems
//
// By default positions are raw screen pixels: origin at the top-left,
// x increasing right, y increasing down. SetCoords installs a world
// coordinate system with (xlow, ylow) at the lower-left corner and
// (xhigh, yhigh) at the upper-right; all shape positions and mouse
// clicks are then expressed in world coordinates.
//
// # Canvases
//
// The window draws onto a backend.Canvas. The browser canvas is the
// default display; the headless canvas keeps the element tree in memory
// and is intended for tests:
//
//	h := headless.New(backend.Config{Width: 100, Height: 100})
//	win, err := graphics.NewGraphWin("test", 100, 100, graphics.WithCanvas(h))
//
// # Logging
//
// The library is silent by default. Call SetLogger to observe session
// lifecycle and patch traffic:
//
//	graphics.SetLogger(slog.Default())
package graphics
