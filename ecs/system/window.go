package system

import (
	"github.com/milk9111/trilho/ecs"
	"github.com/milk9111/trilho/ecs/component"
	"github.com/milk9111/trilho/track"
)

// WindowSystem derives the viewing window and direction of travel from the
// sanitized sample.
type WindowSystem struct {
	tracker track.WindowTracker
}

func NewWindowSystem() *WindowSystem { return &WindowSystem{} }

func (s *WindowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ent, tr, ok := ecs.Singleton(w, component.TrackComponent)
	if !ok {
		return
	}
	cursor, ok := ecs.Get(w, ent, component.CursorComponent)
	if !ok {
		return
	}
	cursor.Window = s.tracker.Observe(cursor.PositionCm, tr.WindowWidthCm)
	_ = ecs.Add(w, ent, component.CursorComponent, cursor)
}

// Reset makes the next tick report no direction of travel.
func (s *WindowSystem) Reset() {
	s.tracker.Reset()
}
