package catalog

import (
	"fmt"
	"strings"

	"github.com/milk9111/trilho/track"
	"gopkg.in/yaml.v3"
)

type Spec struct {
	Track TrackSpec  `yaml:"track"`
	Zones []ZoneSpec `yaml:"zones"`
}

type TrackSpec struct {
	MinCm         float64 `yaml:"min_cm"`
	MaxCm         float64 `yaml:"max_cm"`
	MinUnit       float64 `yaml:"min_unit"`
	MaxUnit       float64 `yaml:"max_unit"`
	WindowWidthCm float64 `yaml:"window_width_cm"`
}

type ZoneSpec struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Content string  `yaml:"content"`
	StartCm float64 `yaml:"start_cm"`
	WidthCm float64 `yaml:"width_cm"`
	// Padding is the older single padding field. It only fills in whichever
	// of enter/exit padding is absent.
	Padding         *float64 `yaml:"padding"`
	EnterPaddingCm  *float64 `yaml:"enter_padding_cm"`
	ExitPaddingCm   *float64 `yaml:"exit_padding_cm"`
	Reference       string   `yaml:"reference"`
	ContentOffsetCm float64  `yaml:"content_offset_cm"`
	Placement       string   `yaml:"placement"`
	FadeInSeconds   float64  `yaml:"fade_in_seconds"`
	FadeOutSeconds  float64  `yaml:"fade_out_seconds"`
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal: %w", err)
	}
	c := spec.Catalog()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Catalog converts the spec without validating it.
func (s Spec) Catalog() *Catalog {
	zones := make([]track.Zone, 0, len(s.Zones))
	for _, zs := range s.Zones {
		zones = append(zones, zs.Zone())
	}
	return New(
		track.PhysicalRange{MinCm: s.Track.MinCm, MaxCm: s.Track.MaxCm},
		track.VirtualRange{MinUnit: s.Track.MinUnit, MaxUnit: s.Track.MaxUnit},
		s.Track.WindowWidthCm,
		zones...,
	)
}

func (zs ZoneSpec) Zone() track.Zone {
	name := zs.Name
	if name == "" {
		name = zs.ID
	}
	return track.Zone{
		ID:              strings.TrimSpace(zs.ID),
		Name:            name,
		ContentKey:      strings.TrimSpace(zs.Content),
		StartCm:         zs.StartCm,
		WidthCm:         zs.WidthCm,
		EnterPaddingCm:  padding(zs.EnterPaddingCm, zs.Padding),
		ExitPaddingCm:   padding(zs.ExitPaddingCm, zs.Padding),
		Reference:       track.ReferencePoint(orDefault(zs.Reference, string(track.ReferenceLeftEdge))),
		ContentOffsetCm: zs.ContentOffsetCm,
		Placement:       track.PlacementMode(orDefault(zs.Placement, string(track.PlacementOff))),
		FadeInSeconds:   zs.FadeInSeconds,
		FadeOutSeconds:  zs.FadeOutSeconds,
	}
}

func padding(explicit, legacy *float64) float64 {
	if explicit != nil {
		return *explicit
	}
	if legacy != nil {
		return *legacy
	}
	return 0
}

func orDefault(v, def string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return def
	}
	return v
}
