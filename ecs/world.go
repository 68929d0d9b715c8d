package ecs

import "github.com/milk9111/pressfx/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, and system order. It is not safe
// for concurrent use; everything runs on the host's update tick.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*SparseSet{}}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity marks an entity as dead and drops its components.
// It reports whether the handle referred to a live entity.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Query returns the live entities holding every one of the given kinds.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	// iterate the smallest store, probe the rest
	base := w.store(kinds[0].ID(), false)
	for _, k := range kinds[1:] {
		s := w.store(k.ID(), false)
		if s.Len() < base.Len() {
			base = s
		}
	}
	if base.Len() == 0 {
		return nil
	}

	out := make([]Entity, 0, base.Len())
outer:
	for _, e := range base.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, k := range kinds {
			if !w.store(k.ID(), false).Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns an arbitrary live entity holding the given kind.
func (w *World) First(k component.Kind) (Entity, bool) {
	if w == nil || k == nil {
		return 0, false
	}
	for _, e := range w.store(k.ID(), false).Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}
