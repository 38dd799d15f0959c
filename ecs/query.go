package ecs

import "github.com/milk9111/trilho/ecs/component"

// IntersectEntities returns entity IDs present in both sets.
func IntersectEntities(a, b *SparseSet) []int {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]int, 0, a.Len())
	for _, id := range a.Entities() {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Query returns live entities that carry every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.stores[k.ID()]
		if set == nil {
			return nil
		}
		sets = append(sets, set)
	}

	ids := sets[0].Entities()
	rest := sets[1:]
	if len(sets) > 1 {
		ids = IntersectEntities(sets[0], sets[1])
		rest = sets[2:]
	}
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		matched := true
		for _, set := range rest {
			if !set.Has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying kind. It is meant for singletons.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	set := w.stores[kind.ID()]
	for _, id := range set.Entities() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}
