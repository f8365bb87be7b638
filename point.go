package graphics

import "github.com/dirkcgrunwald/remi-graphics/svgdom"

// Point is a single location, drawable as one pixel. Points also serve
// as the corners, centers, and anchors of the other shapes.
type Point struct {
	base
	x, y float64
}

var _ GraphicsObject = (*Point)(nil)

// NewPoint creates a point at (x, y).
func NewPoint(x, y float64) *Point {
	p := &Point{base: newBase(optOutline, optFill), x: x, y: y}
	p.self = p
	return p
}

// X returns the point's x coordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the point's y coordinate.
func (p *Point) Y() float64 { return p.y }

// Clone returns an undrawn copy of the point.
func (p *Point) Clone() *Point {
	other := NewPoint(p.x, p.y)
	other.config = p.cloneConfig()
	return other
}

// SetOutline sets the pixel color.
func (p *Point) SetOutline(color string) error { return p.setOutlineOpt(color) }

// SetFill sets the pixel color. A point has no interior, so SetFill
// and SetOutline are the same operation.
func (p *Point) SetFill(color string) error { return p.SetOutline(color) }

func (p *Point) build(win *GraphWin) (*svgdom.Element, error) {
	x, y := win.toScreen(p.x, p.y)
	e := svgdom.NewRect(x, y, x+1, y+1)
	p.applyPaint(e)
	return e, nil
}

func (p *Point) shift(dx, dy float64) {
	p.x += dx
	p.y += dy
}

func (p *Point) paint() (attrs, style map[string]string) {
	outline := p.strOpt(optOutline)
	return map[string]string{"stroke": outline, "fill": outline}, nil
}
