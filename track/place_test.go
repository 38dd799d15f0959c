package track

import (
	"math"
	"strings"
	"testing"
)

func TestPlaceWorldX(t *testing.T) {
	m := scenarioMapper(t)
	cases := []struct {
		name   string
		zone   Zone
		wantCm float64
		ok     bool
	}{
		{"off", Zone{StartCm: 80, Placement: PlacementOff}, 0, false},
		{"left_edge", Zone{StartCm: 80, Reference: ReferenceLeftEdge, Placement: PlacementStatic}, 110, true},
		{"center_with_offset", Zone{StartCm: 80, Reference: ReferenceCenter, ContentOffsetCm: 15, Placement: PlacementContinuous}, 95, true},
		{"clamped", Zone{StartCm: 590, Reference: ReferenceLeftEdge, Placement: PlacementStatic}, 600, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, ok := PlaceWorldX(m, c.zone, 60)
			if ok != c.ok {
				t.Fatalf("ok=%v, want %v", ok, c.ok)
			}
			if ok && !approx(x, m.Map(c.wantCm), 1e-9) {
				t.Fatalf("x=%v, want Map(%v)=%v", x, c.wantCm, m.Map(c.wantCm))
			}
		})
	}
}

func TestCurrentZoneFirstMatch(t *testing.T) {
	zones := []Zone{
		{ID: "a", StartCm: 0, WidthCm: 100},
		{ID: "b", StartCm: 50, WidthCm: 100},
	}
	if z, ok := CurrentZone(zones, 75); !ok || z.ID != "a" {
		t.Fatalf("expected a, got %v %v", z.ID, ok)
	}
	if z, ok := CurrentZone(zones, 120); !ok || z.ID != "b" {
		t.Fatalf("expected b, got %v %v", z.ID, ok)
	}
	if _, ok := CurrentZone(zones, 151); ok {
		t.Fatalf("expected no zone past the last interval")
	}
}

func TestZoneValidate(t *testing.T) {
	base := Zone{ID: "z", WidthCm: 10, Reference: ReferenceCenter, Placement: PlacementOff}
	cases := []struct {
		name   string
		mutate func(z *Zone)
		ok     bool
	}{
		{"valid", func(z *Zone) {}, true},
		{"missing_id", func(z *Zone) { z.ID = "" }, false},
		{"negative_width", func(z *Zone) { z.WidthCm = -1 }, false},
		{"negative_padding", func(z *Zone) { z.ExitPaddingCm = -2 }, false},
		{"negative_fade", func(z *Zone) { z.FadeInSeconds = -0.1 }, false},
		{"bad_reference", func(z *Zone) { z.Reference = "middle" }, false},
		{"bad_placement", func(z *Zone) { z.Placement = "sticky" }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z := base
			c.mutate(&z)
			if err := z.Validate(); (err == nil) != c.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, c.ok)
			}
		})
	}
}

func TestZoneValidateReportsFirstNonFiniteField(t *testing.T) {
	z := Zone{
		ID:             "z",
		StartCm:        math.NaN(),
		WidthCm:        10,
		FadeOutSeconds: math.Inf(1),
		Reference:      ReferenceLeftEdge,
		Placement:      PlacementOff,
	}
	for i := 0; i < 20; i++ {
		err := z.Validate()
		if err == nil || !strings.Contains(err.Error(), "start_cm") {
			t.Fatalf("Validate() = %v, want start_cm reported", err)
		}
	}
}
