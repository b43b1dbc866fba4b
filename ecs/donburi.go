package ecs

import (
	"github.com/phanxgames/vjoy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DonburiSink is an EventSink backed by a Donburi world. Joystick
// events are published to the sink's event type and can be consumed
// with Subscribe and ProcessEvents.
type DonburiSink[T comparable] struct {
	world     donburi.World
	eventType *events.EventType[vjoy.Event[T]]
}

// NewDonburiSink creates an EventSink that publishes joystick events
// into the given Donburi world.
func NewDonburiSink[T comparable](world donburi.World) *DonburiSink[T] {
	return &DonburiSink[T]{
		world:     world,
		eventType: events.NewEventType[vjoy.Event[T]](),
	}
}

// EventType returns the Donburi event type joystick events are
// published to. Subscribers must use this instance.
func (s *DonburiSink[T]) EventType() *events.EventType[vjoy.Event[T]] {
	return s.eventType
}

// EmitEvent publishes one joystick event to the world.
func (s *DonburiSink[T]) EmitEvent(event vjoy.Event[T]) {
	s.eventType.Publish(s.world, event)
}
