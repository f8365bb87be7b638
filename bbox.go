package graphics

import (
	"fmt"
	"strconv"

	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

// bboxObject is the base for objects defined by two opposite corner
// points. A line segment is the degenerate case.
type bboxObject struct {
	base
	p1, p2 *Point
}

func newBBox(p1, p2 *Point, options ...string) bboxObject {
	return bboxObject{base: newBase(options...), p1: p1.Clone(), p2: p2.Clone()}
}

// P1 returns a copy of the first corner point.
func (o *bboxObject) P1() *Point { return o.p1.Clone() }

// P2 returns a copy of the second corner point.
func (o *bboxObject) P2() *Point { return o.p2.Clone() }

// Center returns the midpoint of the bounding box.
func (o *bboxObject) Center() *Point {
	return NewPoint((o.p1.x+o.p2.x)/2, (o.p1.y+o.p2.y)/2)
}

// SetFill sets the interior color.
func (o *bboxObject) SetFill(color string) error { return o.setFillOpt(color) }

// SetOutline sets the outline color.
func (o *bboxObject) SetOutline(color string) error { return o.setOutlineOpt(color) }

// SetWidth sets the outline weight in pixels.
func (o *bboxObject) SetWidth(width int) error { return o.setWidthOpt(width) }

func (o *bboxObject) shift(dx, dy float64) {
	o.p1.x += dx
	o.p1.y += dy
	o.p2.x += dx
	o.p2.y += dy
}

// strokePaint is the attribute mapping shared by the outlined shapes.
// An empty fill renders as "none": SVG would otherwise default the
// interior to black.
func strokePaint(outline string, width int, fill string) map[string]string {
	if fill == "" {
		fill = "none"
	}
	return map[string]string{
		"stroke":       outline,
		"stroke-width": strconv.Itoa(width),
		"fill":         fill,
	}
}

// Rectangle is an axis-aligned rectangle given by two opposite corners.
type Rectangle struct {
	bboxObject
}

var _ GraphicsObject = (*Rectangle)(nil)

// NewRectangle creates a rectangle with corners p1 and p2.
func NewRectangle(p1, p2 *Point) *Rectangle {
	r := &Rectangle{newBBox(p1, p2, optOutline, optWidth, optFill)}
	r.self = r
	return r
}

// Clone returns an undrawn copy of the rectangle.
func (r *Rectangle) Clone() *Rectangle {
	other := NewRectangle(r.p1, r.p2)
	other.config = r.cloneConfig()
	return other
}

func (r *Rectangle) build(win *GraphWin) (*svgdom.Element, error) {
	x1, y1 := win.toScreen(r.p1.x, r.p1.y)
	x2, y2 := win.toScreen(r.p2.x, r.p2.y)
	e := svgdom.NewRect(x1, y1, x2, y2)
	r.applyPaint(e)
	return e, nil
}

func (r *Rectangle) paint() (attrs, style map[string]string) {
	return strokePaint(r.strOpt(optOutline), r.intOpt(optWidth), r.strOpt(optFill)), nil
}

// Oval is an ellipse inscribed in the bounding box of two corner points.
type Oval struct {
	bboxObject
}

var _ GraphicsObject = (*Oval)(nil)

// NewOval creates an oval inscribed in the box with corners p1 and p2.
func NewOval(p1, p2 *Point) *Oval {
	o := &Oval{newBBox(p1, p2, optOutline, optWidth, optFill)}
	o.self = o
	return o
}

// Clone returns an undrawn copy of the oval.
func (o *Oval) Clone() *Oval {
	other := NewOval(o.p1, o.p2)
	other.config = o.cloneConfig()
	return other
}

func (o *Oval) build(win *GraphWin) (*svgdom.Element, error) {
	x1, y1 := win.toScreen(o.p1.x, o.p1.y)
	x2, y2 := win.toScreen(o.p2.x, o.p2.y)
	lx, mx := min(x1, x2), max(x1, x2)
	ly, my := min(y1, y2), max(y1, y2)
	rx, ry := (mx-lx)/2, (my-ly)/2
	e := svgdom.NewEllipse(lx+rx, ly+ry, rx, ry)
	o.applyPaint(e)
	return e, nil
}

func (o *Oval) paint() (attrs, style map[string]string) {
	return strokePaint(o.strOpt(optOutline), o.intOpt(optWidth), o.strOpt(optFill)), nil
}

// Circle is an oval with equal radii.
type Circle struct {
	Oval
	radius float64
}

var _ GraphicsObject = (*Circle)(nil)

// NewCircle creates a circle with the given center and radius.
func NewCircle(center *Point, radius float64) *Circle {
	p1 := NewPoint(center.x-radius, center.y-radius)
	p2 := NewPoint(center.x+radius, center.y+radius)
	c := &Circle{Oval: Oval{newBBox(p1, p2, optOutline, optWidth, optFill)}, radius: radius}
	c.self = c
	return c
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// Clone returns an undrawn copy of the circle.
func (c *Circle) Clone() *Circle {
	other := NewCircle(c.Center(), c.radius)
	other.config = c.cloneConfig()
	return other
}

// Line is a line segment between two points.
type Line struct {
	bboxObject
}

var _ GraphicsObject = (*Line)(nil)

// NewLine creates a line segment from p1 to p2.
func NewLine(p1, p2 *Point) *Line {
	l := &Line{newBBox(p1, p2, optArrow, optFill, optWidth)}
	// A line's color option is its fill; it starts at the default
	// outline color rather than unpainted.
	l.config[optFill] = defaultConfig[optOutline]
	l.self = l
	return l
}

// Clone returns an undrawn copy of the line.
func (l *Line) Clone() *Line {
	other := NewLine(l.p1, l.p2)
	other.config = l.cloneConfig()
	return other
}

// SetFill sets the line color.
func (l *Line) SetFill(color string) error { return l.setFillOpt(color) }

// SetOutline sets the line color. A line has no interior, so SetOutline
// and SetFill are the same operation.
func (l *Line) SetOutline(color string) error { return l.SetFill(color) }

// SetArrow sets which ends carry arrowheads: "first", "last", "both",
// or "none".
func (l *Line) SetArrow(option string) error {
	if !validArrows[option] {
		return fmt.Errorf("%w: arrow %q", ErrBadOption, option)
	}
	return l.reconfig(optArrow, option)
}

func (l *Line) build(win *GraphWin) (*svgdom.Element, error) {
	x1, y1 := win.toScreen(l.p1.x, l.p1.y)
	x2, y2 := win.toScreen(l.p2.x, l.p2.y)
	e := svgdom.NewLine(x1, y1, x2, y2)
	l.applyPaint(e)
	return e, nil
}

// arrowMarker is the id of the arrowhead marker the page shell defines.
const arrowMarker = "url(#rg-arrow)"

func (l *Line) paint() (attrs, style map[string]string) {
	attrs = map[string]string{
		"stroke":       l.strOpt(optFill),
		"stroke-width": strconv.Itoa(l.intOpt(optWidth)),
		"fill":         "none",
		"marker-start": "",
		"marker-end":   "",
	}
	switch l.strOpt(optArrow) {
	case "first":
		attrs["marker-start"] = arrowMarker
	case "last":
		attrs["marker-end"] = arrowMarker
	case "both":
		attrs["marker-start"] = arrowMarker
		attrs["marker-end"] = arrowMarker
	}
	return attrs, nil
}
