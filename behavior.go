package vjoy

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Geometry is the screen-space geometry snapshot handed to behavior
// hooks: the joystick's interaction zone, the background and knob
// rectangles at their current offsets, and the screen bounds set via
// [Manager.SetBounds]. Base and Knob are zero rectangles when the
// joystick has no such element.
type Geometry struct {
	Zone   Rect
	Base   Rect
	Knob   Rect
	Bounds Rect
}

// Behavior is the pluggable geometric policy of a joystick. The three
// hooks run once per instance per tick, in order, each with full
// read/mutate access to that instance's state:
//
//   - UpdateDelta computes s.Delta from the touch state.
//   - UpdateConstraints runs after every instance has a fresh delta and
//     may adjust s.BaseOffset or clamp s.Delta further. all holds the
//     states of all registered instances and must not be mutated.
//   - Update is the catch-all bookkeeping hook (e.g. recentering the
//     base on press). dt is the tick duration in seconds.
//
// Behaviors must not mutate other instances' state.
type Behavior interface {
	UpdateDelta(s *State, g Geometry)
	UpdateConstraints(s *State, g Geometry, all []*State)
	Update(s *State, g Geometry, dt float64)
}

// deltaFrom clamps the displacement d per axis to the base half-size,
// normalizes to [-1, 1], and flips Y to the logical up-positive
// convention. Returns false when there is no base to normalize against.
func deltaFrom(d, half Vec2) (Vec2, bool) {
	if half.X == 0 || half.Y == 0 {
		return Vec2{}, false
	}
	return Vec2{
		X: clamp(d.X, -half.X, half.X) / half.X,
		Y: -clamp(d.Y, -half.Y, half.Y) / half.Y,
	}, true
}

// idleDelta resets the delta of an unengaged joystick. The release-tick
// delta is kept so the Up event reports the final stick position.
func idleDelta(s *State) {
	if !s.JustReleased {
		s.Delta = Vec2{}
	}
}

// Floating is the default behavior: on press the base recenters to the
// press position, and the delta is the displacement from the press
// point, clamped per axis to the base half-size.
type Floating struct{}

func (Floating) UpdateDelta(s *State, g Geometry) {
	ts := s.TouchState
	if ts == nil {
		idleDelta(s)
		return
	}
	if d, ok := deltaFrom(ts.Current.Sub(ts.Start), g.Base.HalfSize()); ok {
		s.Delta = d
	}
}

func (Floating) UpdateConstraints(*State, Geometry, []*State) {}

func (Floating) Update(s *State, g Geometry, _ float64) {
	if ts := s.TouchState; ts != nil && ts.JustPressed {
		s.BaseOffset = ts.Start.Sub(g.Zone.Min()).Sub(g.Base.HalfSize())
	}
}

// Fixed keeps the base centered in the interaction zone. The delta is
// the pointer's displacement from the background's current center, so
// pressing anywhere in the zone deflects the stick immediately.
type Fixed struct{}

func (Fixed) UpdateDelta(s *State, g Geometry) {
	ts := s.TouchState
	if ts == nil {
		idleDelta(s)
		return
	}
	if d, ok := deltaFrom(ts.Current.Sub(g.Base.Center()), g.Base.HalfSize()); ok {
		s.Delta = d
	}
}

func (Fixed) UpdateConstraints(*State, Geometry, []*State) {}

func (Fixed) Update(s *State, g Geometry, _ float64) {
	s.BaseOffset = g.Zone.HalfSize().Sub(g.Base.HalfSize())
}

// Dynamic recenters on press like Floating, then drags the base along
// once the pointer passes the base's rim, keeping the knob pinned to
// the edge. The rim radius is the smaller base half-extent.
type Dynamic struct{}

func (Dynamic) UpdateDelta(s *State, g Geometry) {
	ts := s.TouchState
	if ts == nil {
		idleDelta(s)
		return
	}
	if d, ok := deltaFrom(ts.Current.Sub(g.Base.Center()), g.Base.HalfSize()); ok {
		s.Delta = d
	}
}

func (Dynamic) UpdateConstraints(s *State, g Geometry, _ []*State) {
	ts := s.TouchState
	if ts == nil {
		return
	}
	half := g.Base.HalfSize()
	r := math.Min(half.X, half.Y)
	if r == 0 {
		return
	}
	d := ts.Current.Sub(g.Base.Center())
	if l := d.Len(); l > r {
		s.BaseOffset = s.BaseOffset.Add(d.Mul(1 - r/l))
	}
}

func (Dynamic) Update(s *State, g Geometry, _ float64) {
	if ts := s.TouchState; ts != nil && ts.JustPressed {
		s.BaseOffset = ts.Start.Sub(g.Zone.Min()).Sub(g.Base.HalfSize())
	}
}

// Axis selects which delta axes a joystick reports.
type Axis uint8

const (
	AxisBoth       Axis = iota // report both axes
	AxisHorizontal             // report X only
	AxisVertical               // report Y only
)

// AxisConstrained wraps a behavior and zeroes the axis it does not
// track, for horizontal-only or vertical-only sticks.
type AxisConstrained struct {
	Behavior
	Axis Axis
}

func (a AxisConstrained) UpdateDelta(s *State, g Geometry) {
	a.Behavior.UpdateDelta(s, g)
	switch a.Axis {
	case AxisHorizontal:
		s.Delta.Y = 0
	case AxisVertical:
		s.Delta.X = 0
	}
}

// DeadZone wraps a behavior with a per-axis dead zone. Delta components
// with magnitude below Threshold read as zero; the remaining range is
// rescaled so full deflection still reaches ±1.
type DeadZone struct {
	Behavior
	Threshold float64 // in [0, 1)
}

func (d DeadZone) UpdateDelta(s *State, g Geometry) {
	d.Behavior.UpdateDelta(s, g)
	if s.TouchState == nil {
		return
	}
	s.Delta.X = clipDeadZone(s.Delta.X, d.Threshold)
	s.Delta.Y = clipDeadZone(s.Delta.Y, d.Threshold)
}

func clipDeadZone(v, dz float64) float64 {
	switch {
	case dz <= 0:
		return v
	case v > -dz && v < dz:
		return 0
	case v < 0:
		return (v + dz) / (1 - dz)
	default:
		return (v - dz) / (1 - dz)
	}
}

// Bounded wraps a behavior and clamps the base offset at the constraint
// stage so the background stays inside Bounds (typically the screen
// rectangle). Useful with Floating or Dynamic near screen edges.
type Bounded struct {
	Behavior
	Bounds Rect
}

func (b Bounded) UpdateConstraints(s *State, g Geometry, all []*State) {
	b.Behavior.UpdateConstraints(s, g, all)
	min := g.Zone.Min()
	lo := b.Bounds.Min().Sub(min)
	hi := Vec2{
		X: b.Bounds.X + b.Bounds.Width - g.Base.Width,
		Y: b.Bounds.Y + b.Bounds.Height - g.Base.Height,
	}.Sub(min)
	if hi.X >= lo.X {
		s.BaseOffset.X = clamp(s.BaseOffset.X, lo.X, hi.X)
	}
	if hi.Y >= lo.Y {
		s.BaseOffset.Y = clamp(s.BaseOffset.Y, lo.Y, hi.Y)
	}
}

// SmoothRelease wraps a behavior so the delta eases back to zero over
// Duration seconds after release instead of snapping. It holds
// per-joystick tween state: do not share one SmoothRelease across
// instances.
type SmoothRelease struct {
	Behavior
	Duration float32        // seconds; 0 disables easing
	Ease     ease.TweenFunc // defaults to ease.OutQuad

	tweenX, tweenY *gween.Tween
}

func (b *SmoothRelease) UpdateDelta(s *State, g Geometry) {
	b.Behavior.UpdateDelta(s, g)
	if s.TouchState != nil {
		// Re-engaged mid-decay: the live pointer wins.
		b.tweenX, b.tweenY = nil, nil
	}
}

func (b *SmoothRelease) Update(s *State, g Geometry, dt float64) {
	b.Behavior.Update(s, g, dt)
	if s.JustReleased && b.Duration > 0 {
		fn := b.Ease
		if fn == nil {
			fn = ease.OutQuad
		}
		b.tweenX = gween.New(float32(s.Delta.X), 0, b.Duration, fn)
		b.tweenY = gween.New(float32(s.Delta.Y), 0, b.Duration, fn)
		// The release-tick delta is left untouched for the Up event.
		return
	}
	if s.TouchState == nil && b.tweenX != nil {
		x, doneX := b.tweenX.Update(float32(dt))
		y, doneY := b.tweenY.Update(float32(dt))
		s.Delta = Vec2{X: float64(x), Y: float64(y)}
		if doneX && doneY {
			b.tweenX, b.tweenY = nil, nil
		}
	}
}
