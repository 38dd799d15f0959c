package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/trilho/common"
	"github.com/milk9111/trilho/track"
)

var pixel *ebiten.Image

func solid() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// Panel is a placeholder content handle: a colored card with the zone name.
// It satisfies track.Content and track.Placeable.
type Panel struct {
	Key     string
	Title   string
	Color   color.RGBA
	StartCm float64
	WidthCm float64

	visible bool
	alpha   float64
	worldX  float64
	placed  bool
}

func NewPanel(key, title string, clr color.RGBA, startCm, widthCm float64) *Panel {
	return &Panel{Key: key, Title: title, Color: clr, StartCm: startCm, WidthCm: widthCm}
}

func (p *Panel) SetVisible(visible bool) {
	if p == nil {
		return
	}
	p.visible = visible
}

func (p *Panel) Visible() bool {
	return p != nil && p.visible
}

func (p *Panel) Alpha() float64 {
	if p == nil {
		return 0
	}
	return p.alpha
}

func (p *Panel) SetAlpha(alpha float64) {
	if p == nil {
		return
	}
	p.alpha = common.Clamp01(alpha)
}

func (p *Panel) SetWorldX(x float64) {
	if p == nil {
		return
	}
	p.worldX = x
	p.placed = true
}

// WorldX returns the placed center, if the zone places its content.
func (p *Panel) WorldX() (float64, bool) {
	if p == nil {
		return 0, false
	}
	return p.worldX, p.placed
}

// span returns the panel's horizontal extent in virtual units.
func (p *Panel) span(m track.Mapper) (float64, float64) {
	left, right := m.Map(p.StartCm), m.Map(p.StartCm+p.WidthCm)
	if x, ok := p.WorldX(); ok {
		half := (right - left) / 2
		return x - half, x + half
	}
	return left, right
}

// Draw paints the panel at rows [y, y+h]. Hidden or fully transparent
// panels and panels outside the view are skipped.
func (p *Panel) Draw(screen *ebiten.Image, v View, y, h float64, face ebtext.Face) {
	if !p.Visible() || p.alpha <= 0 {
		return
	}
	left, right := p.span(v.Mapper)
	if !v.Visible(v.Box(left, right, y, h)) {
		return
	}
	x0, x1 := v.ScreenX(left), v.ScreenX(right)
	if x1-x0 < 2 {
		x0, x1 = x0-1, x1+1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(x1-x0, h)
	op.GeoM.Translate(x0, y)
	op.ColorScale.ScaleWithColor(p.Color)
	op.ColorScale.ScaleAlpha(float32(p.alpha))
	screen.DrawImage(solid(), op)

	if face == nil || p.Title == "" {
		return
	}
	top := &ebtext.DrawOptions{}
	top.GeoM.Translate(x0+8, y+8)
	top.ColorScale.ScaleAlpha(float32(p.alpha))
	ebtext.Draw(screen, p.Title, face, top)
}
