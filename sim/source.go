// Package sim provides position sources that stand in for the rail sensor
// while authoring or testing an installation.
package sim

// Source yields a raw position in centimeters for a time in seconds since
// the host started.
type Source interface {
	Position(t float64) (float64, error)
}

// Func adapts a plain function to Source.
type Func func(t float64) (float64, error)

func (f Func) Position(t float64) (float64, error) {
	return f(t)
}

// Constant always reports the same position.
type Constant float64

func (c Constant) Position(float64) (float64, error) {
	return float64(c), nil
}
