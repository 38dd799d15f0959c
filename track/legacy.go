package track

// CurrentZone is the single-zone lookup older installations used: the first
// zone, in catalog order, whose bare interval contains positionCm. It has no
// hysteresis and is independent of Evaluate.
func CurrentZone(zones []Zone, positionCm float64) (Zone, bool) {
	for _, z := range zones {
		if positionCm >= z.StartCm && positionCm <= z.EndCm() {
			return z, true
		}
	}
	return Zone{}, false
}
