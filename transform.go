package graphics

// Transform maps between world coordinates, as installed by SetCoords,
// and raw screen (pixel) coordinates.
//
// The world rectangle runs from (xlow, ylow) in the lower-left corner
// to (xhigh, yhigh) in the upper-right; the screen rectangle runs from
// (0, h-1) to (w-1, 0), so the y axis flips between the two systems.
type Transform struct {
	xbase, ybase   float64
	xscale, yscale float64
}

// NewTransform creates a transform for a w by h pixel window showing
// the world rectangle (xlow, ylow)..(xhigh, yhigh).
// w and h must both be greater than 1.
func NewTransform(w, h int, xlow, ylow, xhigh, yhigh float64) Transform {
	xspan := xhigh - xlow
	yspan := yhigh - ylow
	return Transform{
		xbase:  xlow,
		ybase:  yhigh,
		xscale: xspan / float64(w-1),
		yscale: yspan / float64(h-1),
	}
}

// Screen converts world coordinates to screen coordinates, rounding to
// the nearest pixel.
func (t Transform) Screen(x, y float64) (xs, ys int) {
	fx := (x - t.xbase) / t.xscale
	fy := (t.ybase - y) / t.yscale
	return int(fx + 0.5), int(fy + 0.5)
}

// ScreenDelta converts a world-coordinate displacement to a screen
// displacement. The y component flips sign.
func (t Transform) ScreenDelta(dx, dy float64) (sdx, sdy float64) {
	return dx / t.xscale, -dy / t.yscale
}

// World converts screen coordinates back to world coordinates.
func (t Transform) World(xs, ys float64) (x, y float64) {
	return xs*t.xscale + t.xbase, t.ybase - ys*t.yscale
}
