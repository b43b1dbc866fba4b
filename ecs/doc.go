// Package ecs provides ECS adapters for vjoy's joystick event stream.
//
// The primary adapter is [NewDonburiSink], which publishes joystick
// events (Press, Drag, Up) into a [Donburi] world as typed events.
// Each sink owns its own event type; subscribe through
// [DonburiSink.EventType]:
//
//	sink := ecs.NewDonburiSink[string](world)
//	manager.SetEventSink(sink)
//	sink.EventType().Subscribe(world, func(w donburi.World, e vjoy.Event[string]) {
//		// react to joystick input
//	})
//
// Queued events are delivered by events.ProcessAllEvents (or the event
// type's own ProcessEvents), typically once per tick.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
