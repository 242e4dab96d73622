package ecs

// SparseSet is packed storage for component values of a single type, indexed
// by entity ID. A sparse array maps IDs to slots in the parallel dense/data
// arrays, which stay contiguous under removal via swap-remove. All operations
// are O(1); Each is O(n) over the stored values.
//
// Invariant: for every id with sparse[id] != tombstone,
// dense[sparse[id]] == id and data[sparse[id]] holds that entity's value.
type SparseSet[T any] struct {
	sparse []uint32
	dense  []uint32
	data   []T
}

// NewSparseSet returns an empty set.
func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

// Len returns the number of stored values.
func (s *SparseSet[T]) Len() int {
	return len(s.dense)
}

// Contains reports whether a value is stored for id.
func (s *SparseSet[T]) Contains(id uint32) bool {
	return int(id) < len(s.sparse) && s.sparse[id] != tombstone
}

// Insert stores value for id, overwriting in place if id is already present.
func (s *SparseSet[T]) Insert(id uint32, value T) {
	if int(id) >= len(s.sparse) {
		s.grow(int(id) + 1)
	}
	if slot := s.sparse[id]; slot != tombstone {
		s.data[slot] = value
		return
	}
	s.sparse[id] = uint32(len(s.dense))
	s.dense = append(s.dense, id)
	s.data = append(s.data, value)
}

// Remove deletes and returns the value stored for id. The last dense entry is
// relocated into the vacated slot to keep the arrays packed.
func (s *SparseSet[T]) Remove(id uint32) (T, bool) {
	var zero T
	if !s.Contains(id) {
		return zero, false
	}
	slot := s.sparse[id]
	s.sparse[id] = tombstone

	last := uint32(len(s.dense) - 1)
	removed := s.data[slot]
	if slot != last {
		moved := s.dense[last]
		s.dense[slot] = moved
		s.data[slot] = s.data[last]
		s.sparse[moved] = slot
	}
	s.dense = s.dense[:last]
	s.data[last] = zero
	s.data = s.data[:last]
	return removed, true
}

// Get returns a pointer to the value stored for id.
func (s *SparseSet[T]) Get(id uint32) (*T, bool) {
	if !s.Contains(id) {
		return nil, false
	}
	return &s.data[s.sparse[id]], true
}

// Entities returns the packed entity IDs. The slice is owned by the set and
// valid only until the next mutation; its order is not the insertion order.
func (s *SparseSet[T]) Entities() []uint32 {
	return s.dense
}

// Each calls fn for every stored (id, value) pair in packed order. fn must
// not insert into or remove from the set.
func (s *SparseSet[T]) Each(fn func(id uint32, value *T)) {
	for i, id := range s.dense {
		fn(id, &s.data[i])
	}
}

func (s *SparseSet[T]) grow(n int) {
	old := len(s.sparse)
	if cap(s.sparse) >= n {
		s.sparse = s.sparse[:n]
	} else {
		ns := make([]uint32, n, max(n, 2*cap(s.sparse)))
		copy(ns, s.sparse)
		s.sparse = ns
	}
	for i := old; i < n; i++ {
		s.sparse[i] = tombstone
	}
}
