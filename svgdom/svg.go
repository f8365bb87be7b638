package svgdom

import (
	"strconv"
	"strings"
)

// NewSVG creates a root svg element with the given pixel dimensions.
func NewSVG(width, height int) *Element {
	return New("svg").
		SetAttr("xmlns", "http://www.w3.org/2000/svg").
		SetAttr("width", itoa(width)).
		SetAttr("height", itoa(height))
}

// NewGroup creates a g element.
func NewGroup() *Element { return New("g") }

// NewLine creates a line element between two points.
func NewLine(x1, y1, x2, y2 int) *Element {
	return New("line").
		SetAttr("x1", itoa(x1)).
		SetAttr("y1", itoa(y1)).
		SetAttr("x2", itoa(x2)).
		SetAttr("y2", itoa(y2))
}

// NewRect creates a rect element from two opposite corners. The corners
// may be given in any order.
func NewRect(x1, y1, x2, y2 int) *Element {
	x, y := min(x1, x2), min(y1, y2)
	w, h := abs(x2-x1), abs(y2-y1)
	return New("rect").
		SetAttr("x", itoa(x)).
		SetAttr("y", itoa(y)).
		SetAttr("width", itoa(w)).
		SetAttr("height", itoa(h))
}

// NewEllipse creates an ellipse element with the given center and radii.
func NewEllipse(cx, cy, rx, ry int) *Element {
	return New("ellipse").
		SetAttr("cx", itoa(cx)).
		SetAttr("cy", itoa(cy)).
		SetAttr("rx", itoa(rx)).
		SetAttr("ry", itoa(ry))
}

// NewCircle creates a circle element with the given center and radius.
func NewCircle(cx, cy, r int) *Element {
	return New("circle").
		SetAttr("cx", itoa(cx)).
		SetAttr("cy", itoa(cy)).
		SetAttr("r", itoa(r))
}

// NewPolygon creates a polygon element from a flat list of x,y pairs.
func NewPolygon(coords ...int) *Element {
	return New("polygon").SetAttr("points", pointList(coords))
}

// NewPolyline creates a polyline element from a flat list of x,y pairs.
func NewPolyline(coords ...int) *Element {
	return New("polyline").SetAttr("points", pointList(coords))
}

// NewText creates a text element anchored at the given position.
func NewText(x, y int, s string) *Element {
	return New("text").
		SetAttr("x", itoa(x)).
		SetAttr("y", itoa(y)).
		SetText(s)
}

// NewForeignObject creates a foreignObject element positioned at x,y with
// the given pixel dimensions. Host HTML content is added as children.
func NewForeignObject(x, y, width, height int) *Element {
	return New("foreignObject").
		SetAttr("x", itoa(x)).
		SetAttr("y", itoa(y)).
		SetAttr("width", itoa(width)).
		SetAttr("height", itoa(height))
}

// NewInput creates an HTML text input for embedding in a foreignObject.
func NewInput(value string, sizeChars int) *Element {
	return New("input").
		SetAttr("type", "text").
		SetAttr("value", value).
		SetAttr("size", itoa(sizeChars)).
		SetAttr("xmlns", "http://www.w3.org/1999/xhtml")
}

func pointList(coords []int) string {
	var b strings.Builder
	for i := 0; i+1 < len(coords); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(itoa(coords[i]))
		b.WriteByte(',')
		b.WriteString(itoa(coords[i+1]))
	}
	return b.String()
}

func itoa(n int) string { return strconv.Itoa(n) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
