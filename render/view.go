package render

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/trilho/track"
)

// View is a horizontal camera over the virtual track. Center and Span are in
// virtual units; Width and Height are screen pixels.
type View struct {
	Mapper track.Mapper
	Center float64
	Span   float64
	Width  float64
	Height float64
}

func (v View) scale() float64 {
	if v.Span <= 0 || v.Width <= 0 {
		return 0
	}
	return v.Width / v.Span
}

// ScreenX converts a virtual coordinate to a screen x.
func (v View) ScreenX(worldX float64) float64 {
	return (worldX-v.Center)*v.scale() + v.Width/2
}

// ScreenXCm converts a physical position to a screen x.
func (v View) ScreenXCm(cm float64) float64 {
	return v.ScreenX(v.Mapper.Map(cm))
}

// Bounds is the visible region in virtual units. The vertical axis spans
// [0, Height] so boxes built by Box intersect it.
func (v View) Bounds() cp.BB {
	half := v.Span / 2
	return cp.BB{L: v.Center - half, B: 0, R: v.Center + half, T: v.Height}
}

// Box returns a world-space box for a horizontal span drawn at screen rows
// [y, y+h].
func (v View) Box(left, right, y, h float64) cp.BB {
	if right < left {
		left, right = right, left
	}
	return cp.BB{L: left, B: y, R: right, T: y + h}
}

// Visible reports whether bb overlaps the view.
func (v View) Visible(bb cp.BB) bool {
	return v.Bounds().Intersects(bb)
}
