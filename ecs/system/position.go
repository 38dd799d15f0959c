package system

import (
	"log"

	"github.com/milk9111/trilho/ecs"
	"github.com/milk9111/trilho/ecs/component"
)

// PositionSystem sanitizes the raw sample and maps it into world units.
type PositionSystem struct {
	log     *log.Logger
	last    float64
	primed  bool
	invalid bool
}

func NewPositionSystem(logger *log.Logger) *PositionSystem {
	return &PositionSystem{log: orDefault(logger)}
}

func (s *PositionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ent, tr, ok := ecs.Singleton(w, component.TrackComponent)
	if !ok {
		return
	}
	sample, ok := ecs.Get(w, ent, component.SampleComponent)
	if !ok {
		return
	}

	fallback := tr.Mapper.Physical().MinCm
	if s.primed {
		fallback = s.last
	}
	cm, err := tr.Mapper.Sanitize(sample.PositionCm, fallback)
	switch {
	case err != nil && !s.invalid:
		s.log.Printf("position: %v, using %.2fcm", err, cm)
		s.invalid = true
	case err == nil && s.invalid:
		s.log.Printf("position: samples valid again at %.2fcm", cm)
		s.invalid = false
	}
	s.last = cm
	s.primed = true

	cursor, _ := ecs.Get(w, ent, component.CursorComponent)
	cursor.PositionCm = cm
	cursor.WorldX = tr.Mapper.Map(cm)
	cursor.Simulated = sample.Simulated
	cursor.Invalid = err != nil
	_ = ecs.Add(w, ent, component.CursorComponent, cursor)
}
