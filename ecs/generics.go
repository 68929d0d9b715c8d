package ecs

import "github.com/milk9111/pressfx/ecs/component"

// Components are stored as *T so that mutations through the pointers
// handed out by Get and ForEach stick without a write-back step.

// Add attaches a component value to an entity, replacing any prior value
// of the same kind.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if w == nil || !k.Valid() {
		return component.ErrInvalidKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID(), true).Set(e, v)
	return nil
}

// Get returns the component of kind k attached to e, if any.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.store(k.ID(), false).Get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether e carries a component of kind k.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches the component of kind k from e, reporting whether one
// was present.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() {
		return false
	}
	return w.store(k.ID(), false).Remove(e)
}

// ForEach invokes fn for every live entity carrying kind k. fn may add or
// remove components of kind k for the visited entity.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(k.ID(), false)
	ents := make([]Entity, len(s.Entities()))
	copy(ents, s.Entities())
	for _, e := range ents {
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := Get(w, e, k); ok {
			fn(e, v)
		}
	}
}

// ForEach2 invokes fn for every live entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 invokes fn for every live entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
