package track

// PlacementCm is the physical anchor for a zone's content.
func PlacementCm(z Zone, windowWidthCm float64) float64 {
	base := z.StartCm
	if z.Reference == ReferenceLeftEdge {
		base += windowWidthCm / 2
	}
	return base + z.ContentOffsetCm
}

// PlaceWorldX maps the zone's content anchor into world units. It reports
// false when placement is off.
func PlaceWorldX(m Mapper, z Zone, windowWidthCm float64) (float64, bool) {
	if z.Placement == PlacementOff || z.Placement == "" {
		return 0, false
	}
	return m.Map(PlacementCm(z, windowWidthCm)), true
}
