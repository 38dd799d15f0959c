package system

import (
	"cmp"
	"log"
	"slices"

	"github.com/milk9111/trilho/ecs"
	"github.com/milk9111/trilho/ecs/component"
	"github.com/milk9111/trilho/track"
)

type zoneEntity struct {
	ent  ecs.Entity
	zone track.Zone
}

// zonesInOrder returns zone entities sorted by catalog index so every system
// visits zones, and emits events, in catalog order.
func zonesInOrder(w *ecs.World) []zoneEntity {
	ents := w.Query(component.ZoneComponent.Kind(), component.ZoneStateComponent.Kind())
	out := make([]zoneEntity, 0, len(ents))
	for _, e := range ents {
		z, ok := ecs.Get(w, e, component.ZoneComponent)
		if !ok {
			continue
		}
		out = append(out, zoneEntity{ent: e, zone: z})
	}
	slices.SortFunc(out, func(a, b zoneEntity) int { return cmp.Compare(a.zone.Index, b.zone.Index) })
	return out
}

func contentFor(w *ecs.World, ze zoneEntity) component.Content {
	c, ok := ecs.Get(w, ze.ent, component.ContentComponent)
	if !ok {
		c = component.Content{}
	}
	if c.Key == "" {
		c.Key = ze.zone.Key()
	}
	return c
}

// guard keeps a panicking content handle from taking down the tick.
func guard(logger *log.Logger, what string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("%s panicked: %v", what, r)
			ok = false
		}
	}()
	fn()
	return true
}

func orDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
