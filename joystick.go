package vjoy

import "github.com/hajimehoshi/ebiten/v2"

// TouchState is the record of the single pointer currently bound to a
// joystick. It is created on acquisition and discarded on release.
type TouchState struct {
	// ID is the pointer identity. 0 is reserved for the mouse-synthesized
	// pointer; real touches are discriminated by IsMouse, not by ID.
	ID int
	// IsMouse marks a pointer synthesized from the mouse cursor.
	IsMouse bool
	// Start is the position at acquisition. Never changes afterwards.
	Start Vec2
	// Current is the most recent pointer position.
	Current Vec2
	// JustPressed is true only on the acquisition tick.
	JustPressed bool
}

// State is the per-joystick aggregate the pipeline recomputes every tick.
type State struct {
	// TouchState is present while a pointer is engaged, nil otherwise.
	TouchState *TouchState
	// JustReleased is true only on the tick the pointer disengages.
	JustReleased bool
	// BaseOffset is the background's offset from the zone's top-left,
	// written by behaviors and read by placement.
	BaseOffset Vec2
	// Delta is the normalized directional output, bounded per axis to
	// [-1, 1] by the behavior, Y positive up.
	Delta Vec2
}

// Element is a visual child of a joystick: the background or the knob.
// Placement writes its offset every tick; how the element is rendered is
// up to the host (or [Manager.Draw] when Image is set).
type Element struct {
	// Width and Height are the element's rendered size in pixels.
	Width, Height float64
	// OffsetX and OffsetY position the element relative to the
	// joystick zone's top-left corner. Written by the placement stage.
	OffsetX, OffsetY float64
	// Image, when set, is drawn scaled to Width x Height by Manager.Draw.
	Image *ebiten.Image
}

// NewElement creates an element with the given rendered size.
func NewElement(width, height float64) *Element {
	return &Element{Width: width, Height: height}
}

// HalfSize returns half the element's rendered size.
func (e *Element) HalfSize() Vec2 {
	return Vec2{X: e.Width / 2, Y: e.Height / 2}
}

// Joystick is one configured virtual joystick instance: identity,
// strategies, interaction zone, visual children, and owned state.
// Configure the exported fields before adding it to a Manager; the
// pipeline mutates only the internal state afterwards.
type Joystick[T comparable] struct {
	// ID identifies this instance in events and action callbacks.
	ID T

	// Behavior converts raw displacement into delta and base offset.
	// Defaults to Floating.
	Behavior Behavior
	// Action receives drag lifecycle transitions. Defaults to NoAction.
	Action Action[T]

	// X and Y are the center of the interaction zone in screen
	// coordinates; Width and Height are its size. A press whose origin
	// lands inside this rectangle engages the joystick.
	X, Y          float64
	Width, Height float64

	// Background and Knob are the tagged visual children. A joystick
	// with no Background skips placement entirely.
	Background *Element
	Knob       *Element

	// Hidden excludes the joystick from Manager.Draw. The pipeline
	// still runs for hidden instances.
	Hidden bool

	state State

	// Interaction tracking: which pointer's press engaged the zone.
	pressed      bool
	pointerMouse bool
	pointerID    int
}

// NewJoystick creates a joystick with the default floating behavior and
// no-op action. Position, zone size, and visuals are set by the caller.
func NewJoystick[T comparable](id T) *Joystick[T] {
	return &Joystick[T]{
		ID:       id,
		Behavior: Floating{},
		Action:   NoAction[T]{},
	}
}

// State returns a copy of the joystick's current pipeline state.
func (j *Joystick[T]) State() State {
	s := j.state
	if s.TouchState != nil {
		ts := *s.TouchState
		s.TouchState = &ts
	}
	return s
}

// Pressed reports whether a pointer is currently interacting with the
// joystick's zone.
func (j *Joystick[T]) Pressed() bool {
	return j.pressed
}

// zoneRect returns the interaction zone as a screen-space rectangle.
func (j *Joystick[T]) zoneRect() Rect {
	return RectFromCenterSize(Vec2{X: j.X, Y: j.Y}, Vec2{X: j.Width, Y: j.Height})
}
