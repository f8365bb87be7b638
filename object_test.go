package graphics

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDrawRectangle(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	r := NewRectangle(NewPoint(10, 20), NewPoint(30, 50))
	if err := r.Draw(win); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !r.IsDrawn() {
		t.Error("rectangle should report drawn")
	}

	e := h.Find(r.elem.ID())
	if e == nil {
		t.Fatal("drawn rectangle not on canvas")
	}
	want := map[string]string{
		"x": "10", "y": "20", "width": "20", "height": "30",
		"stroke": "black", "stroke-width": "1", "fill": "none",
	}
	if diff := cmp.Diff(want, e.Attrs()); diff != "" {
		t.Errorf("rect attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawTwiceFails(t *testing.T) {
	win, _ := newTestWin(t, 100, 100)
	c := NewCircle(NewPoint(50, 50), 10)
	if err := c.Draw(win); err != nil {
		t.Fatal(err)
	}
	if err := c.Draw(win); !errors.Is(err, ErrObjectDrawn) {
		t.Errorf("second Draw = %v, want ErrObjectDrawn", err)
	}
}

func TestDrawIntoClosedWindow(t *testing.T) {
	win, _ := newTestWin(t, 100, 100)
	win.Close()
	c := NewCircle(NewPoint(50, 50), 10)
	if err := c.Draw(win); !errors.Is(err, ErrWindowClosed) {
		t.Errorf("Draw into closed window = %v, want ErrWindowClosed", err)
	}
}

func TestUndraw(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	l := NewLine(NewPoint(0, 0), NewPoint(10, 10))

	// Undrawn object: silent no-op.
	if err := l.Undraw(); err != nil {
		t.Fatalf("Undraw before Draw: %v", err)
	}

	if err := l.Draw(win); err != nil {
		t.Fatal(err)
	}
	id := l.elem.ID()
	if err := l.Undraw(); err != nil {
		t.Fatalf("Undraw: %v", err)
	}
	if h.Find(id) != nil {
		t.Error("element still on canvas after Undraw")
	}
	if l.IsDrawn() {
		t.Error("object should not report drawn after Undraw")
	}

	// Undraw frees the object to be drawn again.
	if err := l.Draw(win); err != nil {
		t.Errorf("redraw after Undraw: %v", err)
	}
}

func TestMoveUpdatesStateAndElement(t *testing.T) {
	win, h := newTestWin(t, 101, 101)
	if err := win.SetCoords(0, 0, 10, 10); err != nil {
		t.Fatal(err)
	}
	c := NewCircle(NewPoint(5, 5), 2)
	if err := c.Draw(win); err != nil {
		t.Fatal(err)
	}
	if err := c.Move(1, 2); err != nil {
		t.Fatalf("Move: %v", err)
	}

	center := c.Center()
	if !closeTo(center.X(), 6) || !closeTo(center.Y(), 7) {
		t.Errorf("center after Move = (%v, %v), want (6, 7)", center.X(), center.Y())
	}

	// One world unit is ten pixels; y flips sign.
	e := h.Find(c.elem.ID())
	if got := e.Attr("transform"); got != "translate(10,-20)" {
		t.Errorf("transform = %q, want translate(10,-20)", got)
	}
}

func TestMoveUndrawnObject(t *testing.T) {
	p := NewPoint(1, 2)
	if err := p.Move(3, 4); err != nil {
		t.Fatalf("Move on undrawn object: %v", err)
	}
	if p.X() != 4 || p.Y() != 6 {
		t.Errorf("point after Move = (%v, %v), want (4, 6)", p.X(), p.Y())
	}
}

func TestSetFillOnDrawnShape(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	r := NewRectangle(NewPoint(0, 0), NewPoint(10, 10))
	if err := r.Draw(win); err != nil {
		t.Fatal(err)
	}
	if err := r.SetFill("red"); err != nil {
		t.Fatalf("SetFill: %v", err)
	}
	e := h.Find(r.elem.ID())
	if got := e.Attr("fill"); got != "red" {
		t.Errorf("fill = %q, want red", got)
	}

	if err := r.SetFill("nope"); !errors.Is(err, ErrBadOption) {
		t.Errorf("SetFill bad color = %v, want ErrBadOption", err)
	}
}

func TestCloneIsIndependentAndUndrawn(t *testing.T) {
	win, _ := newTestWin(t, 100, 100)
	r := NewRectangle(NewPoint(0, 0), NewPoint(10, 10))
	r.SetFill("blue")
	if err := r.Draw(win); err != nil {
		t.Fatal(err)
	}

	clone := r.Clone()
	if clone.IsDrawn() {
		t.Error("clone should start undrawn")
	}
	if got := clone.strOpt(optFill); got != "blue" {
		t.Errorf("clone fill = %q, want blue", got)
	}
	if err := clone.SetOutline("green"); err != nil {
		t.Fatal(err)
	}
	if got := r.strOpt(optOutline); got != "black" {
		t.Errorf("mutating clone changed original outline to %q", got)
	}
	if err := clone.Draw(win); err != nil {
		t.Errorf("drawing clone: %v", err)
	}
}

func TestPointDrawsAsPixel(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	p := NewPoint(7, 9)
	if err := p.SetFill("navy"); err != nil {
		t.Fatal(err)
	}
	if err := p.Draw(win); err != nil {
		t.Fatal(err)
	}
	e := h.Find(p.elem.ID())
	want := map[string]string{
		"x": "7", "y": "9", "width": "1", "height": "1",
		"stroke": "navy", "fill": "navy",
	}
	if diff := cmp.Diff(want, e.Attrs()); diff != "" {
		t.Errorf("point attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestCircleGeometry(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	c := NewCircle(NewPoint(50, 40), 10)
	if c.Radius() != 10 {
		t.Errorf("Radius = %v, want 10", c.Radius())
	}
	if err := c.Draw(win); err != nil {
		t.Fatal(err)
	}
	e := h.Find(c.elem.ID())
	for attr, want := range map[string]string{"cx": "50", "cy": "40", "rx": "10", "ry": "10"} {
		if got := e.Attr(attr); got != want {
			t.Errorf("%s = %q, want %q", attr, got, want)
		}
	}
}

func TestOvalCenteredInBox(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	// Corners in "wrong" order still give the same ellipse.
	o := NewOval(NewPoint(60, 70), NewPoint(20, 30))
	if err := o.Draw(win); err != nil {
		t.Fatal(err)
	}
	e := h.Find(o.elem.ID())
	for attr, want := range map[string]string{"cx": "40", "cy": "50", "rx": "20", "ry": "20"} {
		if got := e.Attr(attr); got != want {
			t.Errorf("%s = %q, want %q", attr, got, want)
		}
	}
	center := o.Center()
	if center.X() != 40 || center.Y() != 50 {
		t.Errorf("Center = (%v, %v), want (40, 50)", center.X(), center.Y())
	}
}

func TestBBoxAccessorsReturnCopies(t *testing.T) {
	r := NewRectangle(NewPoint(1, 2), NewPoint(3, 4))
	p1 := r.P1()
	p1.Move(100, 100)
	if got := r.P1(); got.X() != 1 || got.Y() != 2 {
		t.Errorf("P1 after external mutation = (%v, %v), want (1, 2)", got.X(), got.Y())
	}
}

func TestLineColorAndArrows(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	l := NewLine(NewPoint(0, 0), NewPoint(10, 0))
	if err := l.Draw(win); err != nil {
		t.Fatal(err)
	}
	e := h.Find(l.elem.ID())
	if got := e.Attr("stroke"); got != "black" {
		t.Errorf("default line stroke = %q, want black", got)
	}

	// SetOutline is the same operation as SetFill on a line.
	if err := l.SetOutline("red"); err != nil {
		t.Fatal(err)
	}
	if got := e.Attr("stroke"); got != "red" {
		t.Errorf("stroke after SetOutline = %q, want red", got)
	}

	if err := l.SetArrow("both"); err != nil {
		t.Fatal(err)
	}
	if e.Attr("marker-start") == "" || e.Attr("marker-end") == "" {
		t.Error("arrow \"both\" should set both markers")
	}
	if err := l.SetArrow("last"); err != nil {
		t.Fatal(err)
	}
	if e.Attr("marker-start") != "" || e.Attr("marker-end") == "" {
		t.Error("arrow \"last\" should leave only marker-end")
	}

	if err := l.SetArrow("sideways"); !errors.Is(err, ErrBadOption) {
		t.Errorf("SetArrow(sideways) = %v, want ErrBadOption", err)
	}
}

func TestPolygon(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	pg := NewPolygon(NewPoint(0, 0), NewPoint(10, 0), NewPoint(5, 8))
	if err := pg.Draw(win); err != nil {
		t.Fatal(err)
	}
	e := h.Find(pg.elem.ID())
	if e.Tag != "polygon" {
		t.Errorf("polygon rendered as %q element", e.Tag)
	}
	if got := e.Attr("points"); got != "0,0 10,0 5,8" {
		t.Errorf("points = %q, want %q", got, "0,0 10,0 5,8")
	}

	if err := pg.Move(1, 1); err != nil {
		t.Fatal(err)
	}
	pts := pg.Points()
	if len(pts) != 3 || pts[0].X() != 1 || pts[2].Y() != 9 {
		t.Errorf("points after Move = %v", pts)
	}
}

func TestText(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	txt := NewText(NewPoint(50, 50), "hello")
	if err := txt.Draw(win); err != nil {
		t.Fatal(err)
	}
	e := h.Find(txt.elem.ID())
	if e.Text() != "hello" {
		t.Errorf("text content = %q, want hello", e.Text())
	}
	if got := e.Attr("text-anchor"); got != "middle" {
		t.Errorf("text-anchor = %q, want middle", got)
	}
	if got := e.Style("font-family"); got != "helvetica" {
		t.Errorf("font-family = %q, want helvetica", got)
	}

	if err := txt.SetText("bye"); err != nil {
		t.Fatal(err)
	}
	if e.Text() != "bye" {
		t.Errorf("text content after SetText = %q, want bye", e.Text())
	}
	if txt.Text() != "bye" {
		t.Errorf("Text() = %q, want bye", txt.Text())
	}

	if err := txt.SetStyle("bold"); err != nil {
		t.Fatal(err)
	}
	if got := e.Style("font-weight"); got != "bold" {
		t.Errorf("font-weight = %q, want bold", got)
	}
}

func TestTextValidation(t *testing.T) {
	txt := NewText(NewPoint(0, 0), "x")
	tests := []struct {
		name string
		call func() error
	}{
		{"bad face", func() error { return txt.SetFace("comic sans") }},
		{"size too small", func() error { return txt.SetSize(4) }},
		{"size too large", func() error { return txt.SetSize(37) }},
		{"bad style", func() error { return txt.SetStyle("underline") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrBadOption) {
				t.Errorf("got %v, want ErrBadOption", err)
			}
		})
	}
	if err := txt.SetFace("courier"); err != nil {
		t.Errorf("SetFace(courier) = %v", err)
	}
	if err := txt.SetSize(18); err != nil {
		t.Errorf("SetSize(18) = %v", err)
	}
}

func TestEntry(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	en := NewEntry(NewPoint(50, 50), 10)
	if err := en.Draw(win); err != nil {
		t.Fatal(err)
	}

	fo := h.Find(en.elem.ID())
	if fo == nil || fo.Tag != "foreignObject" {
		t.Fatalf("entry should draw a foreignObject, got %v", fo)
	}
	input := h.Find(en.input.ID())
	if input == nil || input.Tag != "input" {
		t.Fatalf("entry should embed an input, got %v", input)
	}

	if err := en.SetText("typed"); err != nil {
		t.Fatal(err)
	}
	if input.Text() != "typed" {
		t.Errorf("input value = %q, want typed", input.Text())
	}

	// A browser-side edit reaches Text through the input event stream.
	h.SendInput(en.input.ID(), "edited")
	waitFor(t, func() bool { return en.Text() == "edited" })

	if err := en.SetFill("white"); err != nil {
		t.Fatal(err)
	}
	if got := input.Style("background"); got != "white" {
		t.Errorf("input background = %q, want white", got)
	}
}

func TestUnsupportedOption(t *testing.T) {
	// A line carries no outline option; reaching reconfig with one
	// reports the unsupported operation.
	l := NewLine(NewPoint(0, 0), NewPoint(1, 1))
	if err := l.reconfig(optOutline, "red"); !errors.Is(err, ErrUnsupportedMethod) {
		t.Errorf("reconfig(outline) on line = %v, want ErrUnsupportedMethod", err)
	}

	// Text has no width option.
	txt := NewText(NewPoint(0, 0), "x")
	if err := txt.reconfig(optWidth, 2); !errors.Is(err, ErrUnsupportedMethod) {
		t.Errorf("reconfig(width) on text = %v, want ErrUnsupportedMethod", err)
	}
}

func TestMarkupContainsShapes(t *testing.T) {
	win, h := newTestWin(t, 100, 100)
	NewCircle(NewPoint(50, 50), 10).Draw(win)
	NewText(NewPoint(50, 80), "label").Draw(win)

	markup := h.Markup()
	for _, frag := range []string{"<circle", "<text", "label"} {
		if !strings.Contains(markup, frag) {
			t.Errorf("canvas markup missing %q: %s", frag, markup)
		}
	}
}
