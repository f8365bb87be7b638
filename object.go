package graphics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dirkcgrunwald/remi-graphics/backend"
	"github.com/dirkcgrunwald/remi-graphics/svgdom"
)

// GraphicsObject is the interface shared by all drawable objects.
type GraphicsObject interface {
	// Draw makes the object visible in win. An object may be drawn
	// into at most one window at a time.
	Draw(win *GraphWin) error

	// Undraw hides the object. It returns silently if the object is
	// not currently drawn.
	Undraw() error

	// Move shifts the object dx units in x and dy units in y, in the
	// coordinate system of the window it is (or will be) drawn in.
	Move(dx, dy float64) error

	// IsDrawn reports whether the object is currently drawn.
	IsDrawn() bool
}

// shape is the part of an object each concrete type provides: building
// its SVG element from the window transform, shifting its numeric
// state, and mapping its config table onto SVG paint attributes.
type shape interface {
	build(win *GraphWin) (*svgdom.Element, error)
	shift(dx, dy float64)
	paint() (attrs, style map[string]string)
}

// base carries the drawn-state binding and config table shared by all
// graphics objects. The self field points back at the concrete object
// so that shared methods can reach its shape behavior; constructors
// set it and callers never see it.
type base struct {
	self   shape
	win    *GraphWin
	elem   *svgdom.Element
	config map[string]any

	// Accumulated screen-space translation from Move calls since the
	// object was drawn.
	tx, ty float64
}

func newBase(options ...string) base {
	cfg := make(map[string]any, len(options))
	for _, o := range options {
		cfg[o] = defaultConfig[o]
	}
	return base{config: cfg}
}

// IsDrawn reports whether the object is currently drawn in a window.
func (b *base) IsDrawn() bool { return b.win != nil }

// Draw makes the object visible in win. Drawing an object that is
// already visible elsewhere returns ErrObjectDrawn; drawing into a
// closed window returns ErrWindowClosed.
func (b *base) Draw(win *GraphWin) error {
	if win == nil {
		return ErrWindowClosed
	}
	if b.win != nil && !b.win.IsClosed() {
		return ErrObjectDrawn
	}
	if win.IsClosed() {
		return ErrWindowClosed
	}
	elem, err := b.self.build(win)
	if err != nil {
		return err
	}
	b.win, b.elem = win, elem
	b.tx, b.ty = 0, 0
	if err := win.canvas.Append(elem); err != nil {
		b.win, b.elem = nil, nil
		return fmt.Errorf("draw: %w", err)
	}
	return win.autoflushPush()
}

// Undraw hides the object. Undrawing an object that is not drawn is a
// no-op.
func (b *base) Undraw() error {
	if b.win == nil {
		return nil
	}
	win, elem := b.win, b.elem
	b.win, b.elem = nil, nil
	if win.IsClosed() {
		return nil
	}
	if err := win.canvas.Remove(elem.ID()); err != nil && !errors.Is(err, backend.ErrUnknownElement) {
		return fmt.Errorf("undraw: %w", err)
	}
	return win.autoflushPush()
}

// Move shifts the object dx units in x and dy units in y. The numeric
// state always moves; if the object is drawn, the on-screen element is
// translated by the equivalent pixel delta.
func (b *base) Move(dx, dy float64) error {
	b.self.shift(dx, dy)
	if b.win == nil || b.win.IsClosed() {
		return nil
	}
	sdx, sdy := b.win.screenDelta(dx, dy)
	b.tx += sdx
	b.ty += sdy
	attrs := map[string]string{"transform": translateAttr(b.tx, b.ty)}
	if err := b.win.canvas.Update(b.elem.ID(), attrs, nil); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	return b.win.autoflushPush()
}

func translateAttr(tx, ty float64) string {
	if tx == 0 && ty == 0 {
		return ""
	}
	return "translate(" +
		strconv.FormatFloat(tx, 'f', -1, 64) + "," +
		strconv.FormatFloat(ty, 'f', -1, 64) + ")"
}

// reconfig changes one configuration option and re-syncs the drawn
// element. Setting an option the object does not carry returns
// ErrUnsupportedMethod.
func (b *base) reconfig(option string, value any) error {
	if _, ok := b.config[option]; !ok {
		return ErrUnsupportedMethod
	}
	b.config[option] = value
	return b.syncPaint()
}

// syncPaint pushes the current paint mapping to the drawn element.
func (b *base) syncPaint() error {
	if b.win == nil || b.win.IsClosed() {
		return nil
	}
	attrs, style := b.self.paint()
	if err := b.win.canvas.Update(b.elem.ID(), attrs, style); err != nil {
		return fmt.Errorf("reconfigure: %w", err)
	}
	return b.win.autoflushPush()
}

// setTextOpt changes the text option and re-syncs the drawn element's
// character data.
func (b *base) setTextOpt(s string) error {
	if _, ok := b.config[optText]; !ok {
		return ErrUnsupportedMethod
	}
	b.config[optText] = s
	if b.win == nil || b.win.IsClosed() {
		return nil
	}
	if err := b.win.canvas.UpdateText(b.elem.ID(), s); err != nil {
		return fmt.Errorf("set text: %w", err)
	}
	return b.win.autoflushPush()
}

// applyPaint stamps the current paint mapping onto a freshly built
// element. Used by build implementations.
func (b *base) applyPaint(e *svgdom.Element) {
	attrs, style := b.self.paint()
	for k, v := range attrs {
		e.SetAttr(k, v)
	}
	for k, v := range style {
		e.SetStyle(k, v)
	}
}

// Config value accessors. The option is assumed present; constructors
// install every option a type supports.

func (b *base) strOpt(option string) string {
	v, _ := b.config[option].(string)
	return v
}

func (b *base) intOpt(option string) int {
	v, _ := b.config[option].(int)
	return v
}

func (b *base) fontOpt() Font {
	v, _ := b.config[optFont].(Font)
	return v
}

func (b *base) cloneConfig() map[string]any {
	cfg := make(map[string]any, len(b.config))
	for k, v := range b.config {
		cfg[k] = v
	}
	return cfg
}

// setFillOpt, setOutlineOpt and setWidthOpt back the exported SetFill,
// SetOutline and SetWidth methods on concrete types.

func (b *base) setFillOpt(color string) error {
	if err := checkColor(color); err != nil {
		return err
	}
	return b.reconfig(optFill, color)
}

func (b *base) setOutlineOpt(color string) error {
	if err := checkColor(color); err != nil {
		return err
	}
	return b.reconfig(optOutline, color)
}

func (b *base) setWidthOpt(width int) error {
	if width < 0 {
		return fmt.Errorf("%w: line width %d", ErrBadOption, width)
	}
	return b.reconfig(optWidth, width)
}
