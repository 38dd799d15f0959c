package system

import (
	"github.com/milk9111/trilho/ecs"
	"github.com/milk9111/trilho/ecs/component"
	"github.com/milk9111/trilho/track"
)

// HysteresisSystem evaluates every zone against the same window and emits
// one event per activation change.
type HysteresisSystem struct{}

func NewHysteresisSystem() *HysteresisSystem { return &HysteresisSystem{} }

func (s *HysteresisSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, cursor, ok := ecs.Singleton(w, component.CursorComponent)
	if !ok {
		return
	}
	window := cursor.Window

	for _, ze := range zonesInOrder(w) {
		st, _ := ecs.Get(w, ze.ent, component.ZoneStateComponent)
		next := track.Evaluate(window, ze.zone, st.Active)
		st.Changed = next != st.Active
		st.Active = next
		_ = ecs.Add(w, ze.ent, component.ZoneStateComponent, st)
		if !st.Changed {
			continue
		}

		kind := ecs.ZoneExited
		if next {
			kind = ecs.ZoneEntered
		}
		w.Events().Push(ecs.Event{
			Type: ecs.ZoneEventType,
			Data: ecs.ZoneEvent{Entity: ze.ent, ZoneID: ze.zone.ID, Kind: kind},
		})
	}
}
