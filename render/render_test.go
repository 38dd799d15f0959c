package render

import (
	"math"
	"testing"

	"github.com/milk9111/trilho/track"
)

func testMapper(t *testing.T) track.Mapper {
	t.Helper()
	m, err := track.NewMapper(track.PhysicalRange{MinCm: 0, MaxCm: 100}, track.VirtualRange{MinUnit: 0, MaxUnit: 1000})
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	return m
}

func TestViewScreenX(t *testing.T) {
	v := View{Mapper: testMapper(t), Center: 500, Span: 200, Width: 800, Height: 600}
	cases := []struct {
		world float64
		want  float64
	}{
		{500, 400},
		{400, 0},
		{600, 800},
		{450, 200},
	}
	for _, c := range cases {
		if got := v.ScreenX(c.world); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("ScreenX(%v) = %v, want %v", c.world, got, c.want)
		}
	}
	if got := v.ScreenXCm(50); math.Abs(got-400) > 1e-9 {
		t.Fatalf("ScreenXCm(50) = %v, want 400", got)
	}
}

func TestViewCulling(t *testing.T) {
	v := View{Mapper: testMapper(t), Center: 500, Span: 200, Width: 800, Height: 600}
	cases := []struct {
		name        string
		left, right float64
		want        bool
	}{
		{"inside", 450, 550, true},
		{"overlaps left", 300, 410, true},
		{"far left", 100, 390, false},
		{"far right", 620, 700, false},
		{"reversed", 550, 450, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := v.Visible(v.Box(c.left, c.right, 100, 50)); got != c.want {
				t.Fatalf("Visible = %v, want %v", got, c.want)
			}
		})
	}
}

func TestPanelContent(t *testing.T) {
	var _ track.Content = (*Panel)(nil)
	var _ track.Placeable = (*Panel)(nil)

	p := NewPanel("k", "Title", palette[0], 10, 20)
	p.SetAlpha(1.5)
	if p.Alpha() != 1 {
		t.Fatalf("alpha not clamped: %v", p.Alpha())
	}
	p.SetAlpha(-1)
	if p.Alpha() != 0 {
		t.Fatalf("alpha not clamped: %v", p.Alpha())
	}
	p.SetVisible(true)
	if !p.Visible() {
		t.Fatalf("expected visible")
	}

	m := testMapper(t)
	if l, r := p.span(m); l != 100 || r != 300 {
		t.Fatalf("span = [%v, %v], want [100, 300]", l, r)
	}
	p.SetWorldX(500)
	if l, r := p.span(m); l != 400 || r != 600 {
		t.Fatalf("placed span = [%v, %v], want [400, 600]", l, r)
	}

	var nilPanel *Panel
	nilPanel.SetAlpha(1)
	nilPanel.SetVisible(true)
	nilPanel.SetWorldX(1)
	if nilPanel.Alpha() != 0 || nilPanel.Visible() {
		t.Fatalf("nil panel should be inert")
	}
}

func TestRegistrySharesKeys(t *testing.T) {
	r := NewRegistry()
	a := r.Resolve(track.Zone{ID: "a", ContentKey: "video"})
	b := r.Resolve(track.Zone{ID: "b", ContentKey: "video", Name: "Video"})
	c := r.Resolve(track.Zone{ID: "c"})
	if a != b {
		t.Fatalf("zones with the same content key should share a panel")
	}
	if a == c {
		t.Fatalf("distinct keys should get distinct panels")
	}
	if p, ok := r.Get("video"); !ok || p.Title != "Video" {
		t.Fatalf("Get(video) = %+v, %v", p, ok)
	}
	panels := r.Panels()
	if len(panels) != 2 || panels[0].Key != "c" || panels[1].Key != "video" {
		t.Fatalf("Panels order = %v", panels)
	}
}
