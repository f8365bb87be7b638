package graphics

import "github.com/dirkcgrunwald/remi-graphics/svgdom"

// Polygon is a closed polygon through a sequence of points.
type Polygon struct {
	base
	points []*Point
}

var _ GraphicsObject = (*Polygon)(nil)

// NewPolygon creates a polygon with the given vertices.
func NewPolygon(points ...*Point) *Polygon {
	pts := make([]*Point, len(points))
	for i, p := range points {
		pts[i] = p.Clone()
	}
	pg := &Polygon{base: newBase(optOutline, optWidth, optFill), points: pts}
	pg.self = pg
	return pg
}

// Points returns copies of the polygon's vertices.
func (pg *Polygon) Points() []*Point {
	pts := make([]*Point, len(pg.points))
	for i, p := range pg.points {
		pts[i] = p.Clone()
	}
	return pts
}

// Clone returns an undrawn copy of the polygon.
func (pg *Polygon) Clone() *Polygon {
	other := NewPolygon(pg.points...)
	other.config = pg.cloneConfig()
	return other
}

// SetFill sets the interior color.
func (pg *Polygon) SetFill(color string) error { return pg.setFillOpt(color) }

// SetOutline sets the outline color.
func (pg *Polygon) SetOutline(color string) error { return pg.setOutlineOpt(color) }

// SetWidth sets the outline weight in pixels.
func (pg *Polygon) SetWidth(width int) error { return pg.setWidthOpt(width) }

func (pg *Polygon) build(win *GraphWin) (*svgdom.Element, error) {
	coords := make([]int, 0, 2*len(pg.points))
	for _, p := range pg.points {
		x, y := win.toScreen(p.x, p.y)
		coords = append(coords, x, y)
	}
	e := svgdom.NewPolygon(coords...)
	pg.applyPaint(e)
	return e, nil
}

func (pg *Polygon) shift(dx, dy float64) {
	for _, p := range pg.points {
		p.x += dx
		p.y += dy
	}
}

func (pg *Polygon) paint() (attrs, style map[string]string) {
	return strokePaint(pg.strOpt(optOutline), pg.intOpt(optWidth), pg.strOpt(optFill)), nil
}
