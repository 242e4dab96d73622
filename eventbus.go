package ecs

import "reflect"

// EventBus is a synchronous, type-keyed publish/subscribe bus. Systems use it
// to react to one another (a combat system publishes a death event, a loot
// system listens) without holding references to each other. Handlers for an
// event type run in subscription order, on the publisher's goroutine.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// NewEventBus returns an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers handler to be called for every published event of type
// E.
func Subscribe[E any](bus *EventBus, handler func(E)) {
	t := reflect.TypeFor[E]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish delivers event to every handler subscribed to type E. Publishing a
// type with no subscribers is a no-op.
func Publish[E any](bus *EventBus, event E) {
	for _, h := range bus.handlers[reflect.TypeFor[E]()] {
		h.(func(E))(event)
	}
}

// Clear drops all subscriptions.
func (b *EventBus) Clear() {
	clear(b.handlers)
}
