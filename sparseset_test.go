package ecs_test

import (
	"testing"

	"github.com/jengine-go/ecs"
)

func TestSparseSetInsertGet(t *testing.T) {
	s := ecs.NewSparseSet[string]()
	s.Insert(3, "three")
	s.Insert(0, "zero")

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if !s.Contains(3) || !s.Contains(0) || s.Contains(1) {
		t.Error("Contains wrong")
	}
	v, ok := s.Get(3)
	if !ok || *v != "three" {
		t.Errorf("Get(3) = %v, %v", v, ok)
	}
	if _, ok := s.Get(99); ok {
		t.Error("Get of unseen id should miss")
	}
}

func TestSparseSetOverwriteKeepsSlot(t *testing.T) {
	s := ecs.NewSparseSet[int]()
	s.Insert(5, 1)
	s.Insert(5, 2)
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if v, _ := s.Get(5); *v != 2 {
		t.Errorf("got %d, want 2", *v)
	}
}

func TestSparseSetSwapRemove(t *testing.T) {
	s := ecs.NewSparseSet[int]()
	s.Insert(10, 100)
	s.Insert(20, 200)
	s.Insert(30, 300)

	v, ok := s.Remove(20)
	if !ok || v != 200 {
		t.Fatalf("Remove = %d, %v", v, ok)
	}
	if s.Len() != 2 || s.Contains(20) {
		t.Fatal("set inconsistent after remove")
	}
	// The relocated entry must still resolve.
	if v, ok := s.Get(30); !ok || *v != 300 {
		t.Errorf("relocated entry broken: %v, %v", v, ok)
	}
	if v, ok := s.Get(10); !ok || *v != 100 {
		t.Errorf("untouched entry broken: %v, %v", v, ok)
	}
}

func TestSparseSetRemoveLast(t *testing.T) {
	s := ecs.NewSparseSet[int]()
	s.Insert(1, 10)
	s.Insert(2, 20)
	if v, ok := s.Remove(2); !ok || v != 20 {
		t.Fatalf("Remove = %d, %v", v, ok)
	}
	if v, _ := s.Get(1); *v != 10 {
		t.Errorf("got %d", *v)
	}
}

func TestSparseSetRemoveMissing(t *testing.T) {
	s := ecs.NewSparseSet[int]()
	if _, ok := s.Remove(7); ok {
		t.Error("Remove on empty set should miss")
	}
	s.Insert(1, 1)
	if _, ok := s.Remove(2); ok {
		t.Error("Remove of absent id should miss")
	}
}

func TestSparseSetEach(t *testing.T) {
	s := ecs.NewSparseSet[int]()
	for id := uint32(0); id < 5; id++ {
		s.Insert(id*7, int(id))
	}
	got := make(map[uint32]int)
	s.Each(func(id uint32, v *int) {
		got[id] = *v
	})
	if len(got) != 5 {
		t.Fatalf("visited %d, want 5", len(got))
	}
	for id := uint32(0); id < 5; id++ {
		if got[id*7] != int(id) {
			t.Errorf("id %d = %d", id*7, got[id*7])
		}
	}
}

func TestSparseSetEntitiesPacked(t *testing.T) {
	s := ecs.NewSparseSet[int]()
	s.Insert(4, 0)
	s.Insert(8, 0)
	s.Insert(15, 0)
	s.Remove(8)
	ids := s.Entities()
	if len(ids) != 2 {
		t.Fatalf("dense len = %d, want 2", len(ids))
	}
	seen := map[uint32]bool{ids[0]: true, ids[1]: true}
	if !seen[4] || !seen[15] {
		t.Errorf("dense = %v", ids)
	}
}
