package ecs

import "github.com/milk9111/trilho/ecs/component"

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	return w.AddComponent(e, handle.Kind(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// Singleton returns the component on the first entity that carries it.
func Singleton[T any](w *World, handle component.ComponentHandle[T]) (Entity, T, bool) {
	var zero T
	e, ok := w.First(handle.Kind())
	if !ok {
		return 0, zero, false
	}
	v, ok := Get(w, e, handle)
	return e, v, ok
}
