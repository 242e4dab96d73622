package ecs

import "math"

// Entity is a generational handle to an object in a World. The ID indexes a
// recycled slot; the Generation disambiguates reuse. Two handles refer to the
// same logical entity only if both fields match.
type Entity struct {
	ID         uint32
	Generation uint32
}

// entityAllocator hands out entity IDs and tracks which handles are current.
// Freed IDs go on a stack and are reissued with a bumped generation, so a
// handle to a despawned entity can never alias the slot's next occupant.
type entityAllocator struct {
	generations []uint32
	free        []uint32
	nextID      uint32
}

func (a *entityAllocator) allocate() Entity {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		return Entity{ID: id, Generation: a.generations[id]}
	}
	id := a.nextID
	a.nextID++
	a.generations = append(a.generations, 0)
	return Entity{ID: id, Generation: 0}
}

func (a *entityAllocator) deallocate(e Entity) bool {
	if !a.isAlive(e) {
		return false
	}
	if a.generations[e.ID] == math.MaxUint32 {
		// A wrapped generation would let a stale handle alias the slot's
		// next occupant.
		panic("ecs: entity generation overflow")
	}
	a.generations[e.ID]++
	a.free = append(a.free, e.ID)
	return true
}

func (a *entityAllocator) isAlive(e Entity) bool {
	return int(e.ID) < len(a.generations) && a.generations[e.ID] == e.Generation
}
