package ecs_test

import (
	"testing"

	"github.com/jengine-go/ecs"
)

type tickClock struct{ Tick uint64 }
type assetTable struct{ Names []string }

func TestResourcesPutGet(t *testing.T) {
	w := ecs.NewWorld()
	ecs.PutResource(&w.Resources, tickClock{Tick: 9})

	clock, ok := ecs.GetResource[tickClock](&w.Resources)
	if !ok || clock.Tick != 9 {
		t.Fatalf("got %v, %v", clock, ok)
	}
	clock.Tick++
	if c, _ := ecs.GetResource[tickClock](&w.Resources); c.Tick != 10 {
		t.Errorf("mutation through pointer lost: %d", c.Tick)
	}
}

func TestResourcesReplace(t *testing.T) {
	w := ecs.NewWorld()
	ecs.PutResource(&w.Resources, tickClock{Tick: 1})
	ecs.PutResource(&w.Resources, tickClock{Tick: 2})
	if c, _ := ecs.GetResource[tickClock](&w.Resources); c.Tick != 2 {
		t.Errorf("got %d, want 2", c.Tick)
	}
}

func TestResourcesMissing(t *testing.T) {
	w := ecs.NewWorld()
	if _, ok := ecs.GetResource[assetTable](&w.Resources); ok {
		t.Error("missing resource should report false")
	}
}

func TestResourcesRemove(t *testing.T) {
	w := ecs.NewWorld()
	ecs.PutResource(&w.Resources, assetTable{Names: []string{"a"}})
	if !ecs.RemoveResource[assetTable](&w.Resources) {
		t.Fatal("remove of present resource should report true")
	}
	if ecs.RemoveResource[assetTable](&w.Resources) {
		t.Error("second remove should report false")
	}
	if _, ok := ecs.GetResource[assetTable](&w.Resources); ok {
		t.Error("resource still present after remove")
	}
}
