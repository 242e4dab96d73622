package ecs_test

import (
	"testing"

	"github.com/jengine-go/ecs"
)

type damageEvent struct {
	Target ecs.Entity
	Amount int
}

type spawnEvent struct{ Who ecs.Entity }

func TestEventBusDeliversToSubscribers(t *testing.T) {
	bus := ecs.NewEventBus()
	var got []damageEvent
	ecs.Subscribe(bus, func(ev damageEvent) {
		got = append(got, ev)
	})

	ecs.Publish(bus, damageEvent{Amount: 5})
	ecs.Publish(bus, damageEvent{Amount: 7})

	if len(got) != 2 || got[0].Amount != 5 || got[1].Amount != 7 {
		t.Errorf("got %v", got)
	}
}

func TestEventBusTypeIsolation(t *testing.T) {
	bus := ecs.NewEventBus()
	damage, spawns := 0, 0
	ecs.Subscribe(bus, func(damageEvent) { damage++ })
	ecs.Subscribe(bus, func(spawnEvent) { spawns++ })

	ecs.Publish(bus, damageEvent{})
	ecs.Publish(bus, damageEvent{})
	ecs.Publish(bus, spawnEvent{})

	if damage != 2 || spawns != 1 {
		t.Errorf("damage=%d spawns=%d", damage, spawns)
	}
}

func TestEventBusSubscriptionOrder(t *testing.T) {
	bus := ecs.NewEventBus()
	var order []int
	ecs.Subscribe(bus, func(damageEvent) { order = append(order, 1) })
	ecs.Subscribe(bus, func(damageEvent) { order = append(order, 2) })
	ecs.Publish(bus, damageEvent{})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v", order)
	}
}

func TestEventBusPublishWithoutSubscribers(t *testing.T) {
	bus := ecs.NewEventBus()
	ecs.Publish(bus, damageEvent{}) // must not panic
}

func TestEventBusClear(t *testing.T) {
	bus := ecs.NewEventBus()
	calls := 0
	ecs.Subscribe(bus, func(damageEvent) { calls++ })
	bus.Clear()
	ecs.Publish(bus, damageEvent{})
	if calls != 0 {
		t.Errorf("calls = %d after Clear", calls)
	}
}
