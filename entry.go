package graphics

import (
	"fmt"

	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

// Entry is a single-line text input field centered at a point. The
// field is rendered as an HTML input embedded in the drawing; edits
// made in the browser are reflected by Text.
type Entry struct {
	base
	anchor *Point
	width  int // width in characters

	text  string
	fill  string
	color string
	font  Font

	input *svgdom.Element // set while drawn
}

var _ GraphicsObject = (*Entry)(nil)

// NewEntry creates an entry field width characters wide, centered at p.
func NewEntry(p *Point, width int) *Entry {
	en := &Entry{
		base:   newBase(),
		anchor: p.Clone(),
		width:  width,
		fill:   "gray",
		color:  "black",
		font:   defaultConfig[optFont].(Font),
	}
	en.self = en
	return en
}

// Anchor returns a copy of the anchor point.
func (en *Entry) Anchor() *Point { return en.anchor.Clone() }

// Text returns the field's current text. While the entry is drawn this
// reflects edits made in the browser.
func (en *Entry) Text() string {
	if en.win != nil && en.input != nil {
		if v, ok := en.win.inputValue(en.input.ID()); ok {
			en.text = v
		}
	}
	return en.text
}

// SetText replaces the field's text.
func (en *Entry) SetText(s string) error {
	en.text = s
	if en.win == nil || en.win.IsClosed() || en.input == nil {
		return nil
	}
	if err := en.win.canvas.UpdateText(en.input.ID(), s); err != nil {
		return fmt.Errorf("set text: %w", err)
	}
	return en.win.autoflushPush()
}

// SetFill sets the field's background color.
func (en *Entry) SetFill(color string) error {
	if err := checkColor(color); err != nil {
		return err
	}
	en.fill = color
	return en.syncInput()
}

// SetTextColor sets the color of the entered text.
func (en *Entry) SetTextColor(color string) error {
	if err := checkColor(color); err != nil {
		return err
	}
	en.color = color
	return en.syncInput()
}

// SetFace sets the font family: helvetica, arial, courier, or
// times roman.
func (en *Entry) SetFace(face string) error {
	if !validFaces[face] {
		return fmt.Errorf("%w: font face %q", ErrBadOption, face)
	}
	en.font.Face = face
	return en.syncInput()
}

// SetSize sets the font size in points, 5 through 36.
func (en *Entry) SetSize(size int) error {
	if err := checkFontSize(size); err != nil {
		return err
	}
	en.font.Size = size
	return en.syncInput()
}

// SetStyle sets the font style: bold, normal, italic, or bold italic.
func (en *Entry) SetStyle(style string) error {
	if !validStyles[style] {
		return fmt.Errorf("%w: font style %q", ErrBadOption, style)
	}
	en.font.Style = style
	return en.syncInput()
}

// Clone returns an undrawn copy of the entry.
func (en *Entry) Clone() *Entry {
	other := NewEntry(en.anchor, en.width)
	other.text = en.text
	other.fill = en.fill
	other.color = en.color
	other.font = en.font
	return other
}

// pixelBox returns the field's on-screen size. Character cells are
// approximated at 0.6em plus padding; exact metrics belong to the
// browser.
func (en *Entry) pixelBox() (w, h int) {
	w = int(0.6*float64(en.font.Size)*float64(en.width)) + 12
	h = 2 * en.font.Size
	return w, h
}

func (en *Entry) build(win *GraphWin) (*svgdom.Element, error) {
	x, y := win.toScreen(en.anchor.x, en.anchor.y)
	w, h := en.pixelBox()
	fo := svgdom.NewForeignObject(x-w/2, y-h/2, w, h)
	input := svgdom.NewInput(en.text, en.width)
	for k, v := range en.inputStyle() {
		input.SetStyle(k, v)
	}
	fo.Append(input)
	en.input = input
	return fo, nil
}

func (en *Entry) shift(dx, dy float64) {
	en.anchor.x += dx
	en.anchor.y += dy
}

func (en *Entry) paint() (attrs, style map[string]string) {
	// Painting applies to the embedded input, not the foreignObject.
	return nil, nil
}

func (en *Entry) inputStyle() map[string]string {
	style := en.font.styleMap()
	style["background"] = en.fill
	style["color"] = en.color
	return style
}

func (en *Entry) syncInput() error {
	if en.win == nil || en.win.IsClosed() || en.input == nil {
		return nil
	}
	if err := en.win.canvas.Update(en.input.ID(), nil, en.inputStyle()); err != nil {
		return fmt.Errorf("reconfigure: %w", err)
	}
	return en.win.autoflushPush()
}
