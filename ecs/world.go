package ecs

import (
	"fmt"

	"github.com/milk9111/rotate/ecs/component"
)

// World owns entities, their components and the frame's event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]storage
	names    map[component.Name]Entity
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]storage),
		names:  make(map[component.Name]Entity),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// CreateNamed allocates an entity reachable through Lookup(name).
func (w *World) CreateNamed(name component.Name) (Entity, error) {
	if e, ok := w.names[name]; ok && w.IsAlive(e) {
		return 0, fmt.Errorf("%w: %q", component.ErrDuplicateName, name)
	}
	e := w.CreateEntity()
	w.names[name] = e
	if err := Add(w, e, component.NameComponent, name); err != nil {
		return 0, err
	}
	return e, nil
}

// Lookup finds a live entity by name.
func (w *World) Lookup(name component.Name) (Entity, bool) {
	e, ok := w.names[name]
	if !ok || !w.IsAlive(e) {
		return 0, false
	}
	return e, true
}

// DestroyEntity kills e and drops its components. It reports whether e was
// alive.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	for name, named := range w.names {
		if named == e {
			delete(w.names, name)
		}
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func (w *World) Entities() []Entity {
	return w.entities.alive()
}

// Query returns the live entities that carry every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	sets := make([]storage, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	ids := intersect(sets)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, makeEntity(id, w.entities.gen[id-1]))
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

// EndFrame clears the events pushed during the frame.
func (w *World) EndFrame() {
	w.events.flush()
}
