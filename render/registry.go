package render

import (
	"image/color"
	"slices"

	"github.com/milk9111/trilho/track"
)

var palette = []color.RGBA{
	{R: 0xe0, G: 0x6c, B: 0x4f, A: 0xff},
	{R: 0x4f, G: 0x9d, B: 0xe0, A: 0xff},
	{R: 0x8b, G: 0xc3, B: 0x4a, A: 0xff},
	{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff},
	{R: 0xa7, G: 0x6b, B: 0xd1, A: 0xff},
}

// Registry keeps one panel per content key. Zones sharing a key share a
// panel.
type Registry struct {
	panels map[string]*Panel
}

func NewRegistry() *Registry {
	return &Registry{panels: make(map[string]*Panel)}
}

// Resolve returns the panel for z's content key, creating it on first use.
// It has the shape of engine.ContentResolver.
func (r *Registry) Resolve(z track.Zone) track.Content {
	key := z.Key()
	if p, ok := r.panels[key]; ok {
		p.Title = titleFor(z)
		p.StartCm, p.WidthCm = z.StartCm, z.WidthCm
		return p
	}
	p := NewPanel(key, titleFor(z), palette[len(r.panels)%len(palette)], z.StartCm, z.WidthCm)
	r.panels[key] = p
	return p
}

// Get returns a panel by key.
func (r *Registry) Get(key string) (*Panel, bool) {
	if r == nil || key == "" {
		return nil, false
	}
	p, ok := r.panels[key]
	return p, ok
}

// Panels returns every panel ordered by key.
func (r *Registry) Panels() []*Panel {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.panels))
	for k := range r.panels {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]*Panel, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.panels[k])
	}
	return out
}

func titleFor(z track.Zone) string {
	if z.Name != "" {
		return z.Name
	}
	return z.ID
}
