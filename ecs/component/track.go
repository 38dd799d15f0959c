package component

import "github.com/milk9111/trilho/track"

// Track is the singleton holding the applied catalog's track geometry.
type Track struct {
	Mapper        track.Mapper
	WindowWidthCm float64
}

var TrackComponent = NewComponent[Track]()

// Sample is the raw position handed to the engine for the current tick.
type Sample struct {
	PositionCm float64
	Simulated  bool
}

var SampleComponent = NewComponent[Sample]()

// Clock carries the tick counter and the step in seconds.
type Clock struct {
	Tick uint64
	DT   float64
}

var ClockComponent = NewComponent[Clock]()

// Cursor is the sanitized position and window for the current tick.
type Cursor struct {
	PositionCm float64
	WorldX     float64
	Simulated  bool
	Window     track.WindowSample
	// Invalid is set while the raw sample needed sanitizing.
	Invalid bool
}

var CursorComponent = NewComponent[Cursor]()
