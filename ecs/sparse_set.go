package ecs

// SparseSet stores one component value per entity slot. Lookups index the
// sparse slice by slot id; iteration walks the dense slices in insertion
// order, shuffled only by removals.
type SparseSet struct {
	ids    []int
	values []any
	// sparse[id-1] is the dense index plus one; zero means absent.
	sparse []int
}

func (s *SparseSet) index(id int) (int, bool) {
	if s == nil || id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1] - 1
	return idx, idx >= 0
}

func (s *SparseSet) Has(id int) bool {
	_, ok := s.index(id)
	return ok
}

// Get returns the value stored for id, or nil.
func (s *SparseSet) Get(id int) any {
	idx, ok := s.index(id)
	if !ok {
		return nil
	}
	return s.values[idx]
}

// Set inserts or overwrites the value for id.
func (s *SparseSet) Set(id int, v any) {
	if s == nil || id <= 0 {
		return
	}
	if idx, ok := s.index(id); ok {
		s.values[idx] = v
		return
	}
	if id > len(s.sparse) {
		s.sparse = append(s.sparse, make([]int, id-len(s.sparse))...)
	}
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.ids)
}

// Remove deletes the value for id by swapping the last dense entry into its
// place.
func (s *SparseSet) Remove(id int) {
	idx, ok := s.index(id)
	if !ok {
		return
	}
	last := len(s.ids) - 1
	moved := s.ids[last]

	s.ids[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved-1] = idx + 1

	s.values[last] = nil
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	s.sparse[id-1] = 0
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Entities returns the dense slot ids. The slice is shared with the set and
// must not be held across a Set or Remove.
func (s *SparseSet) Entities() []int {
	if s == nil {
		return nil
	}
	return s.ids
}
