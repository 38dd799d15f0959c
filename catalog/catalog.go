package catalog

import (
	"math"

	"github.com/milk9111/trilho/track"
)

// Catalog is one immutable load of the installation's track geometry and
// zones. Replace it wholesale; never edit a catalog that has been applied.
type Catalog struct {
	Physical      track.PhysicalRange
	Virtual       track.VirtualRange
	WindowWidthCm float64
	Zones         []track.Zone
}

// New builds a catalog and numbers the zones in the given order.
func New(physical track.PhysicalRange, virtual track.VirtualRange, windowWidthCm float64, zones ...track.Zone) *Catalog {
	c := &Catalog{
		Physical:      physical,
		Virtual:       virtual,
		WindowWidthCm: windowWidthCm,
		Zones:         make([]track.Zone, len(zones)),
	}
	for i, z := range zones {
		z.Index = i
		c.Zones[i] = z
	}
	return c
}

// Validate reports the first problem that would make the catalog unusable.
// The returned error matches track.ErrConfiguration.
func (c *Catalog) Validate() error {
	if c == nil {
		return &track.ConfigurationError{Field: "catalog", Reason: "missing"}
	}
	if _, err := track.NewMapper(c.Physical, c.Virtual); err != nil {
		return err
	}
	if math.IsNaN(c.WindowWidthCm) || math.IsInf(c.WindowWidthCm, 0) || c.WindowWidthCm <= 0 {
		return &track.ConfigurationError{Field: "window_width_cm", Reason: "must be a positive number"}
	}
	seen := make(map[string]struct{}, len(c.Zones))
	for _, z := range c.Zones {
		if err := z.Validate(); err != nil {
			return err
		}
		if _, dup := seen[z.ID]; dup {
			return &track.ConfigurationError{Field: "zone " + z.ID, Reason: "duplicate id"}
		}
		seen[z.ID] = struct{}{}
	}
	return nil
}

// Mapper returns the position mapper for a validated catalog.
func (c *Catalog) Mapper() (track.Mapper, error) {
	return track.NewMapper(c.Physical, c.Virtual)
}

// Zone looks a zone up by id.
func (c *Catalog) Zone(id string) (track.Zone, bool) {
	if c == nil {
		return track.Zone{}, false
	}
	for _, z := range c.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return track.Zone{}, false
}
