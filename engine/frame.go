package engine

import (
	"github.com/milk9111/trilho/ecs"
	"github.com/milk9111/trilho/ecs/component"
	"github.com/milk9111/trilho/track"
)

// ZoneStatus is the committed state of one zone.
type ZoneStatus struct {
	ID           string
	Name         string
	Active       bool
	Alpha        float64
	PlacementX   float64
	HasPlacement bool
}

// Frame is the engine output for one tick. It is never mutated after being
// published.
type Frame struct {
	Tick       uint64
	PositionCm float64
	WorldX     float64
	Simulated  bool
	// Invalid is set when the raw sample had to be sanitized.
	Invalid bool
	Window  track.WindowSample
	Zones   []ZoneStatus
	Events  []ecs.ZoneEvent
}

// Zone finds a zone's status by id.
func (f Frame) Zone(id string) (ZoneStatus, bool) {
	for _, z := range f.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return ZoneStatus{}, false
}

// Active returns the ids of active zones in catalog order.
func (f Frame) Active() []string {
	var ids []string
	for _, z := range f.Zones {
		if z.Active {
			ids = append(ids, z.ID)
		}
	}
	return ids
}

func (e *Engine) snapshot() Frame {
	f := Frame{Tick: e.tick}
	if cursor, ok := ecs.Get(e.world, e.trackEnt, component.CursorComponent); ok {
		f.PositionCm = cursor.PositionCm
		f.WorldX = cursor.WorldX
		f.Simulated = cursor.Simulated
		f.Invalid = cursor.Invalid
		f.Window = cursor.Window
	}

	f.Zones = make([]ZoneStatus, 0, len(e.order))
	for _, id := range e.order {
		ent := e.zones[id]
		z, _ := ecs.Get(e.world, ent, component.ZoneComponent)
		st, _ := ecs.Get(e.world, ent, component.ZoneStateComponent)
		p, _ := ecs.Get(e.world, ent, component.PlacementComponent)
		f.Zones = append(f.Zones, ZoneStatus{
			ID:           z.ID,
			Name:         z.Name,
			Active:       st.Active,
			Alpha:        st.Alpha,
			PlacementX:   p.WorldX,
			HasPlacement: p.Valid,
		})
	}

	for _, evt := range e.world.Events().Drain() {
		if ze, ok := evt.Data.(ecs.ZoneEvent); ok {
			f.Events = append(f.Events, ze)
		}
	}
	return f
}
