package vjoy

import "math"

// Vec2 is a 2D vector in screen coordinates. The coordinate system has
// its origin at the top-left, with Y increasing downward; delta vectors
// are the exception (logical Y-up, see the package docs).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromCenterSize builds the rectangle centered on center with the
// given size.
func RectFromCenterSize(center, size Vec2) Rect {
	return Rect{
		X:      center.X - size.X/2,
		Y:      center.Y - size.Y/2,
		Width:  size.X,
		Height: size.Y,
	}
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// HalfSize returns half the rectangle's extents.
func (r Rect) HalfSize() Vec2 {
	return Vec2{X: r.Width / 2, Y: r.Height / 2}
}

// EventKind identifies a kind of joystick lifecycle event.
type EventKind uint8

const (
	EventPress EventKind = iota // fires on the tick a pointer engages the joystick
	EventDrag                   // fires every tick a pointer is engaged
	EventUp                     // fires on the tick the pointer disengages
)

// String returns the event kind's name.
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventDrag:
		return "drag"
	case EventUp:
		return "up"
	}
	return "unknown"
}

// Event is a discrete joystick lifecycle event. Value holds the pointer
// position for Press and Drag and is zero for Up; Delta holds the
// joystick's directional output at emission time (for Up, the last
// delta computed before release).
type Event[T comparable] struct {
	ID    T
	Kind  EventKind
	Value Vec2
	Delta Vec2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
