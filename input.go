package vjoy

import "github.com/hajimehoshi/ebiten/v2"

// Touch is one live touch in the per-tick input snapshot.
type Touch struct {
	ID int
	// Start is the position where the touch first landed.
	Start Vec2
	// Current is the touch's position this tick.
	Current Vec2
}

// InputSource is the pluggable pointer/touch backend. Poll is called
// once at the start of every Manager.Update tick; the other methods
// must report a consistent snapshot until the next Poll. A touch that
// has lifted is simply absent from the snapshot.
type InputSource interface {
	Poll()
	// CursorPosition returns the current cursor position. ok is false
	// when no cursor is available.
	CursorPosition() (pos Vec2, ok bool)
	// MousePressed reports whether the primary mouse button is down.
	MousePressed() bool
	// Touches returns the live touches. The returned slice is only
	// valid until the next Poll and MUST NOT be mutated.
	Touches() []Touch
	// Touch returns the live touch with the given id.
	Touch(id int) (Touch, bool)
}

// EbitenInput is the default InputSource, backed by Ebitengine's mouse
// and touch APIs. Ebitengine reports only current touch positions, so
// start positions are recorded when a touch id is first seen. It also
// exposes no cursor availability signal: CursorPosition reports the
// last known position with ok always true, even when the cursor is
// outside the window.
type EbitenInput struct {
	touches []Touch
	starts  map[ebiten.TouchID]Vec2
	ids     []ebiten.TouchID
}

// NewEbitenInput creates the default ebiten-backed input source.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{starts: make(map[ebiten.TouchID]Vec2)}
}

func (in *EbitenInput) Poll() {
	in.ids = ebiten.AppendTouchIDs(in.ids[:0])
	in.touches = in.touches[:0]
	for _, id := range in.ids {
		x, y := ebiten.TouchPosition(id)
		cur := Vec2{X: float64(x), Y: float64(y)}
		start, ok := in.starts[id]
		if !ok {
			start = cur
			in.starts[id] = cur
		}
		in.touches = append(in.touches, Touch{ID: int(id), Start: start, Current: cur})
	}
	// Forget start positions of lifted touches.
	for id := range in.starts {
		live := false
		for _, t := range in.ids {
			if t == id {
				live = true
				break
			}
		}
		if !live {
			delete(in.starts, id)
		}
	}
}

func (in *EbitenInput) CursorPosition() (Vec2, bool) {
	x, y := ebiten.CursorPosition()
	return Vec2{X: float64(x), Y: float64(y)}, true
}

func (in *EbitenInput) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (in *EbitenInput) Touches() []Touch {
	return in.touches
}

func (in *EbitenInput) Touch(id int) (Touch, bool) {
	for _, t := range in.touches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}
