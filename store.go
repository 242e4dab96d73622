package ecs

import "reflect"

// store is the type-erased view of a *SparseSet[T] that lets a World hold
// heterogeneous component storage in one map. It is sealed: *SparseSet[T] is
// the only implementation, and typed access goes through a type assertion on
// the concrete set.
type store interface {
	removeEntity(id uint32)
	has(id uint32) bool
	componentName() string
}

func (s *SparseSet[T]) removeEntity(id uint32) {
	s.Remove(id)
}

func (s *SparseSet[T]) has(id uint32) bool {
	return s.Contains(id)
}

func (s *SparseSet[T]) componentName() string {
	return reflect.TypeFor[T]().String()
}

// storage returns the set for T if one has been created.
func storage[T any](w *World) (*SparseSet[T], bool) {
	s, ok := w.stores[reflect.TypeFor[T]()].(*SparseSet[T])
	return s, ok
}

// storageOrCreate returns the set for T, creating it on first use.
func storageOrCreate[T any](w *World) *SparseSet[T] {
	t := reflect.TypeFor[T]()
	if s, ok := w.stores[t]; ok {
		return s.(*SparseSet[T])
	}
	s := NewSparseSet[T]()
	w.stores[t] = s
	return s
}
