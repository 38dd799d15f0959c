package system

import (
	"log"

	"github.com/milk9111/trilho/ecs"
	"github.com/milk9111/trilho/ecs/component"
	"github.com/milk9111/trilho/track"
)

// PlacementSystem positions content for zones with placement enabled. Static
// zones are placed once when they activate; continuous zones every tick
// while active.
type PlacementSystem struct {
	log *log.Logger
}

func NewPlacementSystem(logger *log.Logger) *PlacementSystem {
	return &PlacementSystem{log: orDefault(logger)}
}

func (s *PlacementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, tr, ok := ecs.Singleton(w, component.TrackComponent)
	if !ok {
		return
	}

	for _, ze := range zonesInOrder(w) {
		if ze.zone.Placement == track.PlacementOff || ze.zone.Placement == "" {
			continue
		}
		st, _ := ecs.Get(w, ze.ent, component.ZoneStateComponent)
		if !st.Active {
			continue
		}
		p, _ := ecs.Get(w, ze.ent, component.PlacementComponent)
		if ze.zone.Placement == track.PlacementStatic && p.Valid && !st.Changed {
			continue
		}

		x, ok := track.PlaceWorldX(tr.Mapper, ze.zone, tr.WindowWidthCm)
		if !ok {
			continue
		}
		p = component.Placement{WorldX: x, Valid: true}
		_ = ecs.Add(w, ze.ent, component.PlacementComponent, p)

		c := contentFor(w, ze)
		if placeable, ok := c.Handle.(track.Placeable); ok {
			guard(s.log, "placement: zone="+ze.zone.ID, func() { placeable.SetWorldX(x) })
		}
	}
}
