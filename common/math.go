package common

// Lerp returns a + t*(b-a). t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InverseLerp returns where v sits between a and b, 0 at a and 1 at b.
// A zero-width span reports 0.
func InverseLerp(a, b, v float64) float64 {
	if b == a {
		return 0
	}
	return (v - a) / (b - a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
