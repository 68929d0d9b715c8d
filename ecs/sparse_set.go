package ecs

// SparseSet is cache-friendly storage for one component kind, keyed by
// entity slot id. Values are stored as `any`; the generic helpers in
// generics.go put the type back on.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int // slot id - 1 -> dense index, -1 when absent
}

func (s *SparseSet) denseIndex(e Entity) (int, bool) {
	if s == nil || !e.Valid() {
		return 0, false
	}
	slot := int(e.id()) - 1
	if slot >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[slot]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx] != e {
		return 0, false
	}
	return idx, true
}

// Has reports whether the set holds a value for e.
func (s *SparseSet) Has(e Entity) bool {
	_, ok := s.denseIndex(e)
	return ok
}

// Get returns the value stored for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx, ok := s.denseIndex(e)
	if !ok {
		return nil
	}
	return s.denseValues[idx]
}

// Set inserts or updates the value for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	slot := int(e.id()) - 1
	for slot >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx, ok := s.denseIndex(e); ok {
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[slot] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present, swapping the last dense
// entry into its place.
func (s *SparseSet) Remove(e Entity) bool {
	idx, ok := s.denseIndex(e)
	if !ok {
		return false
	}
	last := len(s.denseEntities) - 1
	lastEnt := s.denseEntities[last]

	s.denseEntities[idx] = lastEnt
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[int(lastEnt.id())-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[int(e.id())-1] = -1
	return true
}

// Entities returns the dense entity list. Callers must not mutate it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}
