package ecs

// Insert attaches a component value to an entity, creating the storage for T
// on first use. An existing T on the entity is overwritten in place.
//
// Inserting on a dead entity is a programming error and panics: the data
// would be orphaned on a logically nonexistent entity, or worse, leak onto
// the slot's next occupant.
func Insert[T any](w *World, e Entity, value T) {
	if !w.IsAlive(e) {
		panic("ecs: cannot insert component on dead entity")
	}
	storageOrCreate[T](w).Insert(e.ID, value)
}

// Remove detaches and returns the T component of an entity. It returns false
// if the entity is dead or has no T; encountering a despawned entity
// mid-tick is an ordinary runtime condition, not an error. Removing a type
// that was never inserted does not create its store.
func Remove[T any](w *World, e Entity) (T, bool) {
	if !w.IsAlive(e) {
		var zero T
		return zero, false
	}
	s, ok := storage[T](w)
	if !ok {
		var zero T
		return zero, false
	}
	return s.Remove(e.ID)
}

// Get returns a pointer to the T component of an entity, or false if the
// entity is dead or has no T. The pointer stays valid until the component is
// removed or the entity despawned.
func Get[T any](w *World, e Entity) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s, ok := storage[T](w)
	if !ok {
		return nil, false
	}
	return s.Get(e.ID)
}

// Has reports whether a live entity has a T component.
func Has[T any](w *World, e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	s, ok := storage[T](w)
	return ok && s.Contains(e.ID)
}
