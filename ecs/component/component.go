package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is the type-erased view of a component kind used by queries and the
// world's untyped API.
type Kind interface {
	ID() ComponentID
	Valid() bool
}

// ComponentKind identifies one component type. The zero kind is invalid.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	var zero T
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1)), name: fmt.Sprintf("%T", zero)}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

func (k ComponentKind[T]) String() string {
	return fmt.Sprintf("%s#%d", k.name, k.id)
}

// ComponentHandle is what packages export for their component types; the
// typed helpers in package ecs take a handle so values never need a cast at
// the call site.
type ComponentHandle[T any] struct {
	ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{ComponentKind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.ComponentKind
}
