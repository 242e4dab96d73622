package ecs

import "reflect"

// Resources holds world-global singleton values keyed by type: state that
// belongs to the world as a whole rather than to any entity (a tick clock, a
// random source, an asset table). At most one value per type.
type Resources struct {
	items map[reflect.Type]any
}

// PutResource stores a value of type T, replacing any previous one.
func PutResource[T any](r *Resources, value T) {
	if r.items == nil {
		r.items = make(map[reflect.Type]any)
	}
	r.items[reflect.TypeFor[T]()] = &value
}

// GetResource returns a pointer to the stored T, or false if none is set.
func GetResource[T any](r *Resources) (*T, bool) {
	v, ok := r.items[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// RemoveResource drops the stored T, reporting whether one was present.
func RemoveResource[T any](r *Resources) bool {
	t := reflect.TypeFor[T]()
	if _, ok := r.items[t]; !ok {
		return false
	}
	delete(r.items, t)
	return true
}
