package graphics

import (
	"fmt"

	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

// Text is a string of text anchored at a point.
type Text struct {
	base
	anchor *Point
}

var _ GraphicsObject = (*Text)(nil)

// NewText creates a text object displaying s centered at p.
func NewText(p *Point, s string) *Text {
	t := &Text{base: newBase(optJustify, optFill, optText, optFont), anchor: p.Clone()}
	t.config[optText] = s
	// Text is painted with its fill option, starting at the default
	// outline color rather than unpainted.
	t.config[optFill] = defaultConfig[optOutline]
	t.self = t
	return t
}

// Anchor returns a copy of the anchor point.
func (t *Text) Anchor() *Point { return t.anchor.Clone() }

// Text returns the displayed string.
func (t *Text) Text() string { return t.strOpt(optText) }

// SetText changes the displayed string.
func (t *Text) SetText(s string) error { return t.setTextOpt(s) }

// SetFill sets the text color.
func (t *Text) SetFill(color string) error { return t.setFillOpt(color) }

// SetOutline sets the text color. Text has no separate outline, so
// SetOutline and SetFill are the same operation.
func (t *Text) SetOutline(color string) error { return t.SetFill(color) }

// SetTextColor sets the text color; it is an alias for SetFill.
func (t *Text) SetTextColor(color string) error { return t.SetFill(color) }

// SetFace sets the font family: helvetica, arial, courier, or
// times roman.
func (t *Text) SetFace(face string) error {
	if !validFaces[face] {
		return fmt.Errorf("%w: font face %q", ErrBadOption, face)
	}
	f := t.fontOpt()
	f.Face = face
	return t.reconfig(optFont, f)
}

// SetSize sets the font size in points, 5 through 36.
func (t *Text) SetSize(size int) error {
	if err := checkFontSize(size); err != nil {
		return err
	}
	f := t.fontOpt()
	f.Size = size
	return t.reconfig(optFont, f)
}

// SetStyle sets the font style: bold, normal, italic, or bold italic.
func (t *Text) SetStyle(style string) error {
	if !validStyles[style] {
		return fmt.Errorf("%w: font style %q", ErrBadOption, style)
	}
	f := t.fontOpt()
	f.Style = style
	return t.reconfig(optFont, f)
}

// Clone returns an undrawn copy of the text object.
func (t *Text) Clone() *Text {
	other := NewText(t.anchor, t.Text())
	other.config = t.cloneConfig()
	return other
}

func (t *Text) build(win *GraphWin) (*svgdom.Element, error) {
	x, y := win.toScreen(t.anchor.x, t.anchor.y)
	e := svgdom.NewText(x, y, t.Text())
	t.applyPaint(e)
	return e, nil
}

func (t *Text) shift(dx, dy float64) {
	t.anchor.x += dx
	t.anchor.y += dy
}

func (t *Text) paint() (attrs, style map[string]string) {
	attrs = map[string]string{
		"fill":        t.strOpt(optFill),
		"text-anchor": textAnchor(t.strOpt(optJustify)),
	}
	return attrs, t.fontOpt().styleMap()
}
