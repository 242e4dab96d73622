package ecs

import "testing"

type big struct{ V int }
type small struct{ V int }

// The multi-query must walk the smallest participating set, whatever position
// it holds in the type list.
func TestQuery2DriverIsSmallestSet(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 1000; i++ {
		e := w.Spawn()
		Insert(w, e, big{i})
		if i < 3 {
			Insert(w, e, small{i})
		}
	}

	q := NewQuery2[big, small](w)
	if len(q.driver) != 3 {
		t.Errorf("driver len = %d, want 3 (smallest set)", len(q.driver))
	}
	q2 := NewQuery2[small, big](w)
	if len(q2.driver) != 3 {
		t.Errorf("reversed driver len = %d, want 3", len(q2.driver))
	}
}

func TestQuery3DriverIsSmallestSet(t *testing.T) {
	type mid struct{ V int }
	w := NewWorld()
	for i := 0; i < 100; i++ {
		e := w.Spawn()
		Insert(w, e, big{i})
		if i < 10 {
			Insert(w, e, mid{i})
		}
		if i < 2 {
			Insert(w, e, small{i})
		}
	}
	q := NewQuery3[big, mid, small](w)
	if len(q.driver) != 2 {
		t.Errorf("driver len = %d, want 2", len(q.driver))
	}
}

// A missing store empties the query without touching the other sets.
func TestQueryMissingStoreYieldsNothing(t *testing.T) {
	w := NewWorld()
	Insert(w, w.Spawn(), big{1})
	q := NewQuery2[big, small](w)
	if q.driver != nil {
		t.Errorf("driver should be empty, got %d ids", len(q.driver))
	}
	if q.Next() {
		t.Error("query should yield nothing")
	}
}
