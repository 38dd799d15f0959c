package ecs

import "github.com/milk9111/trilho/ecs/component"

// World owns entities, components, and system order.
type World struct {
	entities  entityStore
	scheduler *Scheduler
	events    EventQueue
	stores    map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		scheduler: NewScheduler(),
		stores:    map[component.ComponentID]*SparseSet{},
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, set := range w.stores {
		set.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once. Events pushed during an update stay readable
// until the next Update.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.events.flush()
	w.scheduler.Update(w)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// AddComponent inserts or replaces the component of the given kind.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	set := w.stores[kind.ID()]
	if set == nil {
		set = &SparseSet{}
		w.stores[kind.ID()] = set
	}
	set.Set(int(e.id()), value)
	return nil
}

func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	set := w.stores[kind.ID()]
	if !set.Has(int(e.id())) {
		return nil, false
	}
	return set.Get(int(e.id())), true
}

func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if !w.HasComponent(e, kind) {
		return false
	}
	w.stores[kind.ID()].Remove(int(e.id()))
	return true
}
