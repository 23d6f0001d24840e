package ecs

import "github.com/milk9111/rotate/ecs/component"

// Add sets e's component for handle, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		s = &sparseSet[T]{}
		w.stores[kind.ID()] = s
	}
	s.(*sparseSet[T]).set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	s, ok := w.stores[handle.Kind().ID()]
	if !ok || !w.IsAlive(e) || !s.has(e.id()) {
		return false
	}
	s.remove(e.id())
	return true
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	s, ok := w.stores[handle.Kind().ID()]
	return ok && w.IsAlive(e) && s.has(e.id())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	if !w.IsAlive(e) {
		return zero, false
	}
	s, ok := w.stores[handle.Kind().ID()]
	if !ok {
		return zero, false
	}
	set, ok := s.(*sparseSet[T])
	if !ok {
		return zero, false
	}
	return set.get(e.id())
}

// Update applies fn to e's component in place. It reports whether the
// component was present.
func Update[T any](w *World, e Entity, handle component.ComponentHandle[T], fn func(*T)) bool {
	value, ok := Get(w, e, handle)
	if !ok {
		return false
	}
	fn(&value)
	w.stores[handle.Kind().ID()].(*sparseSet[T]).set(e.id(), value)
	return true
}
