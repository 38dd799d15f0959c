package track

// Direction is the instantaneous direction of travel along the track.
type Direction int

const (
	DirectionStill Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "still"
	}
}

// StillEpsilonCm is the smallest movement that counts as travel.
const StillEpsilonCm = 1e-4

// WindowSample is the viewing window for one tick.
type WindowSample struct {
	PositionCm float64
	Left       float64
	Right      float64
	Direction  Direction
}

// NewWindow builds a window centered on positionCm.
func NewWindow(positionCm, widthCm float64, dir Direction) WindowSample {
	half := widthCm / 2
	return WindowSample{
		PositionCm: positionCm,
		Left:       positionCm - half,
		Right:      positionCm + half,
		Direction:  dir,
	}
}

// WindowTracker derives the window and direction from consecutive raw
// samples. Feed it the sensor stream, not a smoothed display position.
type WindowTracker struct {
	prev   float64
	primed bool
}

func (t *WindowTracker) Observe(positionCm, widthCm float64) WindowSample {
	dir := DirectionStill
	if t.primed {
		delta := positionCm - t.prev
		if delta >= StillEpsilonCm {
			dir = DirectionRight
		} else if delta <= -StillEpsilonCm {
			dir = DirectionLeft
		}
	}
	t.prev = positionCm
	t.primed = true
	return NewWindow(positionCm, widthCm, dir)
}

// Reset forgets the previous sample; the next observation reports Still.
func (t *WindowTracker) Reset() {
	t.prev = 0
	t.primed = false
}
