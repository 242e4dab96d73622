package ecs

// Query iterates all entities that have a component of type T, yielding the
// entity handle and a pointer to its component. Iteration follows the set's
// packed order, which depends on insertion and removal history; callers that
// need a deterministic order must sort the results themselves.
//
// The query captures the set's arrays at construction. Inserting or removing
// T components while the query is alive is not allowed.
type Query[T any] struct {
	dense       []uint32
	data        []T
	generations []uint32
	index       int
}

// NewQuery creates a query over all entities with a T component. If no T has
// ever been inserted the query is empty.
func NewQuery[T any](w *World) *Query[T] {
	q := &Query[T]{
		generations: w.allocator.generations,
		index:       -1,
	}
	if s, ok := storage[T](w); ok {
		q.dense = s.dense
		q.data = s.data
	}
	return q
}

// Next advances to the next entity. It must be called before the first
// Entity or Get, and returns false when the iteration is complete.
func (q *Query[T]) Next() bool {
	q.index++
	return q.index < len(q.dense)
}

// Entity returns the current entity.
func (q *Query[T]) Entity() Entity {
	id := q.dense[q.index]
	return Entity{ID: id, Generation: q.generations[id]}
}

// Get returns a pointer to the current entity's component.
func (q *Query[T]) Get() *T {
	return &q.data[q.index]
}

// Len returns the total number of entities the query yields.
func (q *Query[T]) Len() int {
	return len(q.dense)
}

// Reset rewinds the query for another pass.
func (q *Query[T]) Reset() {
	q.index = -1
}
