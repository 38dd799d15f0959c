package ecs

import "strconv"

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits. Destroying an entity bumps its slot's generation, so stale
// handles to a reused slot are rejected. The zero Entity is never valid.
type Entity uint64

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID { return entityID(e & 0xffffffff) }
func (e Entity) generation() generation { return generation(e >> 32) }
func (e Entity) Valid() bool { return e.id() > 0 }

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// entityStore tracks slot generations and free slots. Slot ids start at 1.
type entityStore struct {
	gens  []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gens))
	}
	s.alive[id-1] = true
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gens[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.alive[id-1] && s.gens[id-1] == e.generation()
}

// handle returns the live handle for a slot id.
func (s *entityStore) handle(id int) (Entity, bool) {
	if id <= 0 || id > len(s.gens) || !s.alive[id-1] {
		return 0, false
	}
	return makeEntity(entityID(id), s.gens[id-1]), true
}

func (s *entityStore) count() int {
	return len(s.gens) - len(s.free)
}
