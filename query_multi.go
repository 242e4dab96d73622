package ecs

import "reflect"

// Multi-component queries. Query2 through Query8 iterate the entities that
// have every listed component type, yielding pointers to all of them at once.
//
// Each query captures a fetch handle (the sparse/dense/data arrays) per type
// at construction, then walks the dense IDs of the smallest participating set
// and probes the other handles for each ID. Entities missing any of the types
// are skipped, so the cost is bounded by the smallest set, not the union.
//
// The component types must be pairwise distinct: two pointers into the same
// set for the same entity would alias, so constructors panic on duplicates.
// The set of arities is closed; fetch handles are not exported.

// fetch is a per-type handle capturing one set's arrays for the lifetime of a
// query. Stale after any structural mutation of the set.
type fetch[T any] struct {
	sparse []uint32
	dense  []uint32
	data   []T
}

func makeFetch[T any](w *World) (fetch[T], bool) {
	s, ok := storage[T](w)
	if !ok {
		return fetch[T]{}, false
	}
	return fetch[T]{sparse: s.sparse, dense: s.dense, data: s.data}, true
}

func (f *fetch[T]) get(id uint32) (*T, bool) {
	if int(id) >= len(f.sparse) {
		return nil, false
	}
	slot := f.sparse[id]
	if slot == tombstone {
		return nil, false
	}
	return &f.data[slot], true
}

// smallest returns the shortest of the given dense arrays; it drives the
// iteration.
func smallest(dense ...[]uint32) []uint32 {
	driver := dense[0]
	for _, d := range dense[1:] {
		if len(d) < len(driver) {
			driver = d
		}
	}
	return driver
}

func assertDistinct(name string, types ...reflect.Type) {
	for i := 1; i < len(types); i++ {
		for j := 0; j < i; j++ {
			if types[i] == types[j] {
				panic("ecs: duplicate component types in " + name)
			}
		}
	}
}

// Query2 iterates all entities that have both a T1 and a T2 component.
type Query2[T1, T2 any] struct {
	f1          fetch[T1]
	f2          fetch[T2]
	driver      []uint32
	generations []uint32
	index       int
	id          uint32
	p1          *T1
	p2          *T2
}

// NewQuery2 creates a query over all entities with the 2 components T1, T2.
// It panics if the component types are not pairwise distinct. If any type has
// no store the query yields nothing.
func NewQuery2[T1, T2 any](w *World) *Query2[T1, T2] {
	assertDistinct("Query2", reflect.TypeFor[T1](), reflect.TypeFor[T2]())
	q := &Query2[T1, T2]{generations: w.allocator.generations, index: -1}
	f1, ok1 := makeFetch[T1](w)
	f2, ok2 := makeFetch[T2](w)
	if !ok1 || !ok2 {
		return q
	}
	q.f1, q.f2 = f1, f2
	q.driver = smallest(f1.dense, f2.dense)
	return q
}

// Next advances to the next entity that has all the components. It must be
// called before the first Entity or Get, and returns false when done.
func (q *Query2[T1, T2]) Next() bool {
	for {
		q.index++
		if q.index >= len(q.driver) {
			return false
		}
		id := q.driver[q.index]
		p1, ok := q.f1.get(id)
		if !ok {
			continue
		}
		p2, ok := q.f2.get(id)
		if !ok {
			continue
		}
		q.id, q.p1, q.p2 = id, p1, p2
		return true
	}
}

// Entity returns the current entity.
func (q *Query2[T1, T2]) Entity() Entity {
	return Entity{ID: q.id, Generation: q.generations[q.id]}
}

// Get returns pointers to the current entity's components.
func (q *Query2[T1, T2]) Get() (*T1, *T2) {
	return q.p1, q.p2
}

// Reset rewinds the query for another pass.
func (q *Query2[T1, T2]) Reset() {
	q.index = -1
}

// Query3 iterates all entities that have the 3 components T1, T2, T3.
type Query3[T1, T2, T3 any] struct {
	f1          fetch[T1]
	f2          fetch[T2]
	f3          fetch[T3]
	driver      []uint32
	generations []uint32
	index       int
	id          uint32
	p1          *T1
	p2          *T2
	p3          *T3
}

// NewQuery3 creates a query over all entities with the 3 components T1, T2,
// T3. It panics if the component types are not pairwise distinct.
func NewQuery3[T1, T2, T3 any](w *World) *Query3[T1, T2, T3] {
	assertDistinct("Query3",
		reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
	q := &Query3[T1, T2, T3]{generations: w.allocator.generations, index: -1}
	f1, ok1 := makeFetch[T1](w)
	f2, ok2 := makeFetch[T2](w)
	f3, ok3 := makeFetch[T3](w)
	if !ok1 || !ok2 || !ok3 {
		return q
	}
	q.f1, q.f2, q.f3 = f1, f2, f3
	q.driver = smallest(f1.dense, f2.dense, f3.dense)
	return q
}

// Next advances to the next entity that has all the components.
func (q *Query3[T1, T2, T3]) Next() bool {
	for {
		q.index++
		if q.index >= len(q.driver) {
			return false
		}
		id := q.driver[q.index]
		p1, ok := q.f1.get(id)
		if !ok {
			continue
		}
		p2, ok := q.f2.get(id)
		if !ok {
			continue
		}
		p3, ok := q.f3.get(id)
		if !ok {
			continue
		}
		q.id, q.p1, q.p2, q.p3 = id, p1, p2, p3
		return true
	}
}

// Entity returns the current entity.
func (q *Query3[T1, T2, T3]) Entity() Entity {
	return Entity{ID: q.id, Generation: q.generations[q.id]}
}

// Get returns pointers to the current entity's components.
func (q *Query3[T1, T2, T3]) Get() (*T1, *T2, *T3) {
	return q.p1, q.p2, q.p3
}

// Reset rewinds the query for another pass.
func (q *Query3[T1, T2, T3]) Reset() {
	q.index = -1
}

// Query4 iterates all entities that have the 4 components T1, T2, T3, T4.
type Query4[T1, T2, T3, T4 any] struct {
	f1          fetch[T1]
	f2          fetch[T2]
	f3          fetch[T3]
	f4          fetch[T4]
	driver      []uint32
	generations []uint32
	index       int
	id          uint32
	p1          *T1
	p2          *T2
	p3          *T3
	p4          *T4
}

// NewQuery4 creates a query over all entities with the 4 components T1, T2,
// T3, T4. It panics if the component types are not pairwise distinct.
func NewQuery4[T1, T2, T3, T4 any](w *World) *Query4[T1, T2, T3, T4] {
	assertDistinct("Query4",
		reflect.TypeFor[T1](), reflect.TypeFor[T2](),
		reflect.TypeFor[T3](), reflect.TypeFor[T4]())
	q := &Query4[T1, T2, T3, T4]{generations: w.allocator.generations, index: -1}
	f1, ok1 := makeFetch[T1](w)
	f2, ok2 := makeFetch[T2](w)
	f3, ok3 := makeFetch[T3](w)
	f4, ok4 := makeFetch[T4](w)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return q
	}
	q.f1, q.f2, q.f3, q.f4 = f1, f2, f3, f4
	q.driver = smallest(f1.dense, f2.dense, f3.dense, f4.dense)
	return q
}

// Next advances to the next entity that has all the components.
func (q *Query4[T1, T2, T3, T4]) Next() bool {
	for {
		q.index++
		if q.index >= len(q.driver) {
			return false
		}
		id := q.driver[q.index]
		p1, ok := q.f1.get(id)
		if !ok {
			continue
		}
		p2, ok := q.f2.get(id)
		if !ok {
			continue
		}
		p3, ok := q.f3.get(id)
		if !ok {
			continue
		}
		p4, ok := q.f4.get(id)
		if !ok {
			continue
		}
		q.id, q.p1, q.p2, q.p3, q.p4 = id, p1, p2, p3, p4
		return true
	}
}

// Entity returns the current entity.
func (q *Query4[T1, T2, T3, T4]) Entity() Entity {
	return Entity{ID: q.id, Generation: q.generations[q.id]}
}

// Get returns pointers to the current entity's components.
func (q *Query4[T1, T2, T3, T4]) Get() (*T1, *T2, *T3, *T4) {
	return q.p1, q.p2, q.p3, q.p4
}

// Reset rewinds the query for another pass.
func (q *Query4[T1, T2, T3, T4]) Reset() {
	q.index = -1
}

// Query5 iterates all entities that have the 5 components T1 through T5.
type Query5[T1, T2, T3, T4, T5 any] struct {
	f1          fetch[T1]
	f2          fetch[T2]
	f3          fetch[T3]
	f4          fetch[T4]
	f5          fetch[T5]
	driver      []uint32
	generations []uint32
	index       int
	id          uint32
	p1          *T1
	p2          *T2
	p3          *T3
	p4          *T4
	p5          *T5
}

// NewQuery5 creates a query over all entities with the 5 components T1
// through T5. It panics if the component types are not pairwise distinct.
func NewQuery5[T1, T2, T3, T4, T5 any](w *World) *Query5[T1, T2, T3, T4, T5] {
	assertDistinct("Query5",
		reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3](),
		reflect.TypeFor[T4](), reflect.TypeFor[T5]())
	q := &Query5[T1, T2, T3, T4, T5]{generations: w.allocator.generations, index: -1}
	f1, ok1 := makeFetch[T1](w)
	f2, ok2 := makeFetch[T2](w)
	f3, ok3 := makeFetch[T3](w)
	f4, ok4 := makeFetch[T4](w)
	f5, ok5 := makeFetch[T5](w)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return q
	}
	q.f1, q.f2, q.f3, q.f4, q.f5 = f1, f2, f3, f4, f5
	q.driver = smallest(f1.dense, f2.dense, f3.dense, f4.dense, f5.dense)
	return q
}

// Next advances to the next entity that has all the components.
func (q *Query5[T1, T2, T3, T4, T5]) Next() bool {
	for {
		q.index++
		if q.index >= len(q.driver) {
			return false
		}
		id := q.driver[q.index]
		p1, ok := q.f1.get(id)
		if !ok {
			continue
		}
		p2, ok := q.f2.get(id)
		if !ok {
			continue
		}
		p3, ok := q.f3.get(id)
		if !ok {
			continue
		}
		p4, ok := q.f4.get(id)
		if !ok {
			continue
		}
		p5, ok := q.f5.get(id)
		if !ok {
			continue
		}
		q.id = id
		q.p1, q.p2, q.p3, q.p4, q.p5 = p1, p2, p3, p4, p5
		return true
	}
}

// Entity returns the current entity.
func (q *Query5[T1, T2, T3, T4, T5]) Entity() Entity {
	return Entity{ID: q.id, Generation: q.generations[q.id]}
}

// Get returns pointers to the current entity's components.
func (q *Query5[T1, T2, T3, T4, T5]) Get() (*T1, *T2, *T3, *T4, *T5) {
	return q.p1, q.p2, q.p3, q.p4, q.p5
}

// Reset rewinds the query for another pass.
func (q *Query5[T1, T2, T3, T4, T5]) Reset() {
	q.index = -1
}

// Query6 iterates all entities that have the 6 components T1 through T6.
type Query6[T1, T2, T3, T4, T5, T6 any] struct {
	f1          fetch[T1]
	f2          fetch[T2]
	f3          fetch[T3]
	f4          fetch[T4]
	f5          fetch[T5]
	f6          fetch[T6]
	driver      []uint32
	generations []uint32
	index       int
	id          uint32
	p1          *T1
	p2          *T2
	p3          *T3
	p4          *T4
	p5          *T5
	p6          *T6
}

// NewQuery6 creates a query over all entities with the 6 components T1
// through T6. It panics if the component types are not pairwise distinct.
func NewQuery6[T1, T2, T3, T4, T5, T6 any](w *World) *Query6[T1, T2, T3, T4, T5, T6] {
	assertDistinct("Query6",
		reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3](),
		reflect.TypeFor[T4](), reflect.TypeFor[T5](), reflect.TypeFor[T6]())
	q := &Query6[T1, T2, T3, T4, T5, T6]{generations: w.allocator.generations, index: -1}
	f1, ok1 := makeFetch[T1](w)
	f2, ok2 := makeFetch[T2](w)
	f3, ok3 := makeFetch[T3](w)
	f4, ok4 := makeFetch[T4](w)
	f5, ok5 := makeFetch[T5](w)
	f6, ok6 := makeFetch[T6](w)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return q
	}
	q.f1, q.f2, q.f3, q.f4, q.f5, q.f6 = f1, f2, f3, f4, f5, f6
	q.driver = smallest(f1.dense, f2.dense, f3.dense, f4.dense, f5.dense, f6.dense)
	return q
}

// Next advances to the next entity that has all the components.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Next() bool {
	for {
		q.index++
		if q.index >= len(q.driver) {
			return false
		}
		id := q.driver[q.index]
		p1, ok := q.f1.get(id)
		if !ok {
			continue
		}
		p2, ok := q.f2.get(id)
		if !ok {
			continue
		}
		p3, ok := q.f3.get(id)
		if !ok {
			continue
		}
		p4, ok := q.f4.get(id)
		if !ok {
			continue
		}
		p5, ok := q.f5.get(id)
		if !ok {
			continue
		}
		p6, ok := q.f6.get(id)
		if !ok {
			continue
		}
		q.id = id
		q.p1, q.p2, q.p3, q.p4, q.p5, q.p6 = p1, p2, p3, p4, p5, p6
		return true
	}
}

// Entity returns the current entity.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Entity() Entity {
	return Entity{ID: q.id, Generation: q.generations[q.id]}
}

// Get returns pointers to the current entity's components.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Get() (*T1, *T2, *T3, *T4, *T5, *T6) {
	return q.p1, q.p2, q.p3, q.p4, q.p5, q.p6
}

// Reset rewinds the query for another pass.
func (q *Query6[T1, T2, T3, T4, T5, T6]) Reset() {
	q.index = -1
}

// Query7 iterates all entities that have the 7 components T1 through T7.
type Query7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	f1          fetch[T1]
	f2          fetch[T2]
	f3          fetch[T3]
	f4          fetch[T4]
	f5          fetch[T5]
	f6          fetch[T6]
	f7          fetch[T7]
	driver      []uint32
	generations []uint32
	index       int
	id          uint32
	p1          *T1
	p2          *T2
	p3          *T3
	p4          *T4
	p5          *T5
	p6          *T6
	p7          *T7
}

// NewQuery7 creates a query over all entities with the 7 components T1
// through T7. It panics if the component types are not pairwise distinct.
func NewQuery7[T1, T2, T3, T4, T5, T6, T7 any](w *World) *Query7[T1, T2, T3, T4, T5, T6, T7] {
	assertDistinct("Query7",
		reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3](),
		reflect.TypeFor[T4](), reflect.TypeFor[T5](), reflect.TypeFor[T6](),
		reflect.TypeFor[T7]())
	q := &Query7[T1, T2, T3, T4, T5, T6, T7]{generations: w.allocator.generations, index: -1}
	f1, ok1 := makeFetch[T1](w)
	f2, ok2 := makeFetch[T2](w)
	f3, ok3 := makeFetch[T3](w)
	f4, ok4 := makeFetch[T4](w)
	f5, ok5 := makeFetch[T5](w)
	f6, ok6 := makeFetch[T6](w)
	f7, ok7 := makeFetch[T7](w)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 {
		return q
	}
	q.f1, q.f2, q.f3, q.f4, q.f5, q.f6, q.f7 = f1, f2, f3, f4, f5, f6, f7
	q.driver = smallest(f1.dense, f2.dense, f3.dense, f4.dense, f5.dense,
		f6.dense, f7.dense)
	return q
}

// Next advances to the next entity that has all the components.
func (q *Query7[T1, T2, T3, T4, T5, T6, T7]) Next() bool {
	for {
		q.index++
		if q.index >= len(q.driver) {
			return false
		}
		id := q.driver[q.index]
		p1, ok := q.f1.get(id)
		if !ok {
			continue
		}
		p2, ok := q.f2.get(id)
		if !ok {
			continue
		}
		p3, ok := q.f3.get(id)
		if !ok {
			continue
		}
		p4, ok := q.f4.get(id)
		if !ok {
			continue
		}
		p5, ok := q.f5.get(id)
		if !ok {
			continue
		}
		p6, ok := q.f6.get(id)
		if !ok {
			continue
		}
		p7, ok := q.f7.get(id)
		if !ok {
			continue
		}
		q.id = id
		q.p1, q.p2, q.p3, q.p4, q.p5, q.p6, q.p7 = p1, p2, p3, p4, p5, p6, p7
		return true
	}
}

// Entity returns the current entity.
func (q *Query7[T1, T2, T3, T4, T5, T6, T7]) Entity() Entity {
	return Entity{ID: q.id, Generation: q.generations[q.id]}
}

// Get returns pointers to the current entity's components.
func (q *Query7[T1, T2, T3, T4, T5, T6, T7]) Get() (*T1, *T2, *T3, *T4, *T5, *T6, *T7) {
	return q.p1, q.p2, q.p3, q.p4, q.p5, q.p6, q.p7
}

// Reset rewinds the query for another pass.
func (q *Query7[T1, T2, T3, T4, T5, T6, T7]) Reset() {
	q.index = -1
}

// Query8 iterates all entities that have the 8 components T1 through T8.
type Query8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	f1          fetch[T1]
	f2          fetch[T2]
	f3          fetch[T3]
	f4          fetch[T4]
	f5          fetch[T5]
	f6          fetch[T6]
	f7          fetch[T7]
	f8          fetch[T8]
	driver      []uint32
	generations []uint32
	index       int
	id          uint32
	p1          *T1
	p2          *T2
	p3          *T3
	p4          *T4
	p5          *T5
	p6          *T6
	p7          *T7
	p8          *T8
}

// NewQuery8 creates a query over all entities with the 8 components T1
// through T8. It panics if the component types are not pairwise distinct.
func NewQuery8[T1, T2, T3, T4, T5, T6, T7, T8 any](w *World) *Query8[T1, T2, T3, T4, T5, T6, T7, T8] {
	assertDistinct("Query8",
		reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3](),
		reflect.TypeFor[T4](), reflect.TypeFor[T5](), reflect.TypeFor[T6](),
		reflect.TypeFor[T7](), reflect.TypeFor[T8]())
	q := &Query8[T1, T2, T3, T4, T5, T6, T7, T8]{generations: w.allocator.generations, index: -1}
	f1, ok1 := makeFetch[T1](w)
	f2, ok2 := makeFetch[T2](w)
	f3, ok3 := makeFetch[T3](w)
	f4, ok4 := makeFetch[T4](w)
	f5, ok5 := makeFetch[T5](w)
	f6, ok6 := makeFetch[T6](w)
	f7, ok7 := makeFetch[T7](w)
	f8, ok8 := makeFetch[T8](w)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 || !ok8 {
		return q
	}
	q.f1, q.f2, q.f3, q.f4 = f1, f2, f3, f4
	q.f5, q.f6, q.f7, q.f8 = f5, f6, f7, f8
	q.driver = smallest(f1.dense, f2.dense, f3.dense, f4.dense, f5.dense,
		f6.dense, f7.dense, f8.dense)
	return q
}

// Next advances to the next entity that has all the components.
func (q *Query8[T1, T2, T3, T4, T5, T6, T7, T8]) Next() bool {
	for {
		q.index++
		if q.index >= len(q.driver) {
			return false
		}
		id := q.driver[q.index]
		p1, ok := q.f1.get(id)
		if !ok {
			continue
		}
		p2, ok := q.f2.get(id)
		if !ok {
			continue
		}
		p3, ok := q.f3.get(id)
		if !ok {
			continue
		}
		p4, ok := q.f4.get(id)
		if !ok {
			continue
		}
		p5, ok := q.f5.get(id)
		if !ok {
			continue
		}
		p6, ok := q.f6.get(id)
		if !ok {
			continue
		}
		p7, ok := q.f7.get(id)
		if !ok {
			continue
		}
		p8, ok := q.f8.get(id)
		if !ok {
			continue
		}
		q.id = id
		q.p1, q.p2, q.p3, q.p4 = p1, p2, p3, p4
		q.p5, q.p6, q.p7, q.p8 = p5, p6, p7, p8
		return true
	}
}

// Entity returns the current entity.
func (q *Query8[T1, T2, T3, T4, T5, T6, T7, T8]) Entity() Entity {
	return Entity{ID: q.id, Generation: q.generations[q.id]}
}

// Get returns pointers to the current entity's components.
func (q *Query8[T1, T2, T3, T4, T5, T6, T7, T8]) Get() (*T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8) {
	return q.p1, q.p2, q.p3, q.p4, q.p5, q.p6, q.p7, q.p8
}

// Reset rewinds the query for another pass.
func (q *Query8[T1, T2, T3, T4, T5, T6, T7, T8]) Reset() {
	q.index = -1
}
