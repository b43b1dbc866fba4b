// Package vjoy implements on-screen virtual joysticks for [Ebitengine].
//
// A virtual joystick is a draggable on-screen control that converts
// touch or mouse input into a normalized directional vector. vjoy
// tracks a pointer's engagement with each joystick's interaction zone,
// runs a pluggable geometric behavior to turn raw displacement into a
// bounded delta, fires action callbacks on drag lifecycle transitions,
// and emits discrete Press/Drag/Up events for application code.
//
// # Quick start
//
// Create a [Manager], register one or more [Joystick] instances, and
// call [Manager.Update] once per tick from your game's Update method:
//
//	pad := vjoy.New[string]()
//	stick := vjoy.NewJoystick("move")
//	stick.X, stick.Y = 120, 360          // zone center, screen coords
//	stick.Width, stick.Height = 200, 200 // zone size
//	stick.Background = vjoy.NewElement(150, 150)
//	stick.Knob = vjoy.NewElement(50, 50)
//	pad.Add(stick)
//
//	func (g *Game) Update() error {
//		pad.Update()
//		for _, e := range pad.Events() {
//			if e.Kind == vjoy.EventDrag {
//				g.player.Move(e.Delta.X, e.Delta.Y)
//			}
//		}
//		return nil
//	}
//
// # Behaviors
//
// A [Behavior] decides how raw pointer displacement becomes the
// joystick's delta and where the visual base sits. [Floating] (the
// default) recenters the base wherever the press lands; [Fixed] keeps
// it anchored in the zone; [Dynamic] drags the base along once the
// pointer passes the rim. Decorators compose on top of any behavior:
// [DeadZone], [AxisConstrained], [Bounded], and [SmoothRelease].
//
// # Actions and events
//
// An [Action] receives exactly one of OnStartDrag, OnDrag, or OnEndDrag
// per engaged tick. For one-off wiring use [Callbacks]; for ECS-driven
// games, the vjoy/ecs subpackage bridges events into a [Donburi] world.
//
// # Input
//
// Input comes from an [InputSource]. The default [EbitenInput] reads
// the mouse and touch state from Ebitengine; [ScriptedInput] feeds
// synthetic samples for tests and automation, optionally sequenced
// across ticks by a JSON [Script].
//
// Delta conventions: each axis is bounded to [-1, 1] by the behavior,
// with Y positive pointing up (screen-down displacement produces a
// negative Y delta).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package vjoy
