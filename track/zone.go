package track

import "math"

// PhysicalRange is the sensed extent of the track in centimeters.
type PhysicalRange struct {
	MinCm float64
	MaxCm float64
}

func (r PhysicalRange) Validate() error {
	if !finite(r.MinCm) || !finite(r.MaxCm) {
		return configError("physical range", "bounds must be finite (min=%v max=%v)", r.MinCm, r.MaxCm)
	}
	if r.MaxCm <= r.MinCm {
		return configError("physical range", "max_cm %v must be greater than min_cm %v", r.MaxCm, r.MinCm)
	}
	return nil
}

// VirtualRange is the world-unit extent the physical range maps onto. It may
// be descending.
type VirtualRange struct {
	MinUnit float64
	MaxUnit float64
}

func (r VirtualRange) Validate() error {
	if !finite(r.MinUnit) || !finite(r.MaxUnit) {
		return configError("virtual range", "bounds must be finite (min=%v max=%v)", r.MinUnit, r.MaxUnit)
	}
	return nil
}

// ReferencePoint anchors a zone's content placement.
type ReferencePoint string

const (
	ReferenceLeftEdge ReferencePoint = "left_edge"
	ReferenceCenter   ReferencePoint = "center"
)

// PlacementMode controls when a zone's content position is recomputed.
type PlacementMode string

const (
	PlacementOff        PlacementMode = "off"
	PlacementStatic     PlacementMode = "static"
	PlacementContinuous PlacementMode = "continuous"
)

// Zone is a named interval on the track. Zones are immutable once a catalog
// has been applied.
type Zone struct {
	// Index is the zone's position in its catalog.
	Index int
	ID    string
	Name  string
	// ContentKey identifies the content handle driven by this zone. Zones
	// sharing a key share one fade.
	ContentKey string

	StartCm float64
	WidthCm float64

	EnterPaddingCm float64
	ExitPaddingCm  float64

	Reference       ReferencePoint
	ContentOffsetCm float64
	Placement       PlacementMode

	FadeInSeconds  float64
	FadeOutSeconds float64
}

func (z Zone) EndCm() float64 {
	return z.StartCm + z.WidthCm
}

// Key returns the content key, falling back to the zone id.
func (z Zone) Key() string {
	if z.ContentKey != "" {
		return z.ContentKey
	}
	return z.ID
}

func (z Zone) Validate() error {
	field := "zone " + z.ID
	if z.ID == "" {
		return configError("zone", "id is required (index %d)", z.Index)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"start_cm", z.StartCm},
		{"width_cm", z.WidthCm},
		{"enter_padding_cm", z.EnterPaddingCm},
		{"exit_padding_cm", z.ExitPaddingCm},
		{"content_offset_cm", z.ContentOffsetCm},
		{"fade_in_seconds", z.FadeInSeconds},
		{"fade_out_seconds", z.FadeOutSeconds},
	} {
		if !finite(f.v) {
			return configError(field, "%s must be finite", f.name)
		}
	}
	if z.WidthCm < 0 {
		return configError(field, "width_cm %v is negative", z.WidthCm)
	}
	if z.EnterPaddingCm < 0 || z.ExitPaddingCm < 0 {
		return configError(field, "paddings must be >= 0 (enter=%v exit=%v)", z.EnterPaddingCm, z.ExitPaddingCm)
	}
	if z.FadeInSeconds < 0 || z.FadeOutSeconds < 0 {
		return configError(field, "fade durations must be >= 0 (in=%v out=%v)", z.FadeInSeconds, z.FadeOutSeconds)
	}
	switch z.Reference {
	case ReferenceLeftEdge, ReferenceCenter:
	default:
		return configError(field, "unknown reference %q", z.Reference)
	}
	switch z.Placement {
	case PlacementOff, PlacementStatic, PlacementContinuous:
	default:
		return configError(field, "unknown placement %q", z.Placement)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
