package track

// Entered reports whether the window overlaps the zone widened by its enter
// padding.
func Entered(w WindowSample, z Zone) bool {
	return w.Right >= z.StartCm-z.EnterPaddingCm && w.Left <= z.EndCm()+z.EnterPaddingCm
}

// Exited reports whether an active zone has been left behind. The threshold
// sits exit padding past the zone's trailing edge in the direction of
// travel; a still window uses the rightward rule.
func Exited(w WindowSample, z Zone) bool {
	if w.Direction == DirectionLeft {
		return w.Right < z.StartCm-z.ExitPaddingCm
	}
	return w.Left > z.EndCm()+z.ExitPaddingCm
}

// Evaluate returns the zone's next activation state.
func Evaluate(w WindowSample, z Zone, active bool) bool {
	if !active {
		return Entered(w, z)
	}
	return !Exited(w, z)
}
