package ecs

import (
	"reflect"
	"slices"
)

// World owns the entity allocator and one type-erased SparseSet per component
// type. Component stores are created lazily on first Insert of a type.
type World struct {
	allocator entityAllocator
	stores    map[reflect.Type]store
	Resources Resources
}

// NewWorld creates an empty world with no entities and no component stores.
func NewWorld() *World {
	return &World{
		stores: make(map[reflect.Type]store),
	}
}

// Spawn creates a new entity with no components.
func (w *World) Spawn() Entity {
	return w.allocator.allocate()
}

// Despawn destroys an entity and purges its components from every store. It
// returns false, with no side effects, if the entity is already dead.
func (w *World) Despawn(e Entity) bool {
	if !w.allocator.deallocate(e) {
		return false
	}
	for _, s := range w.stores {
		s.removeEntity(e.ID)
	}
	return true
}

// IsAlive reports whether the handle refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.allocator.isAlive(e)
}

// EntityCount returns the number of currently alive entities.
func (w *World) EntityCount() int {
	return int(w.allocator.nextID) - len(w.allocator.free)
}

// ComponentNames returns the sorted type names of the components attached to
// e, or nil if e is dead. Debug tooling helper.
func (w *World) ComponentNames(e Entity) []string {
	if !w.IsAlive(e) {
		return nil
	}
	var names []string
	for _, s := range w.stores {
		if s.has(e.ID) {
			names = append(names, s.componentName())
		}
	}
	slices.Sort(names)
	return names
}

// EntityInfo describes one alive entity for debug listings.
type EntityInfo struct {
	Entity     Entity
	Components []string
}

// Entities returns a page of alive entities in ascending ID order, skipping
// offset entities and returning at most limit. Debug tooling helper; O(n) in
// the number of slots ever allocated.
func (w *World) Entities(offset, limit int) []EntityInfo {
	if limit <= 0 {
		return nil
	}
	freed := make([]bool, w.allocator.nextID)
	for _, id := range w.allocator.free {
		freed[id] = true
	}
	var page []EntityInfo
	for id := uint32(0); id < w.allocator.nextID; id++ {
		if freed[id] {
			continue
		}
		if offset > 0 {
			offset--
			continue
		}
		e := Entity{ID: id, Generation: w.allocator.generations[id]}
		page = append(page, EntityInfo{Entity: e, Components: w.ComponentNames(e)})
		if len(page) == limit {
			break
		}
	}
	return page
}
