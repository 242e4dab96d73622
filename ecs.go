// Package ecs implements a sparse-set Entity-Component-System core for Go.
//
// Features:
// - Generational entity handles; stale handles never observe recycled slots.
// - One packed SparseSet per component type, O(1) insert/remove/lookup.
// - No component registration or code generation required by callers.
// - Generic single-component queries and multi-component queries up to 8 types.
// - Multi-component queries iterate the smallest participating set.
//
// The World is single-threaded: one mutating operation or one live query at a
// time. Inserting or removing components of a type while a query over that
// type is alive invalidates the query's captured arrays and is not allowed;
// gather entity handles during iteration and mutate afterwards.
package ecs

// tombstone marks an empty slot in a sparse array.
const tombstone = ^uint32(0)
