package vjoy

// ScriptedInput is an InputSource fed by synthetic samples, for
// automated tests and demos. Drive it with the verb methods between
// Manager.Update calls; state persists until changed, like a real
// device. The cursor starts out available at (0, 0).
type ScriptedInput struct {
	cursor    Vec2
	cursorOK  bool
	mouseDown bool
	touches   []Touch
}

// NewScriptedInput creates an empty scripted input source.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{cursorOK: true}
}

// MoveCursor moves the synthetic cursor.
func (in *ScriptedInput) MoveCursor(x, y float64) {
	in.cursor = Vec2{X: x, Y: y}
}

// SetCursorAvailable controls whether CursorPosition reports a cursor,
// simulating the pointer leaving the display.
func (in *ScriptedInput) SetCursorAvailable(ok bool) {
	in.cursorOK = ok
}

// PressMouse presses the synthetic primary mouse button.
func (in *ScriptedInput) PressMouse() {
	in.mouseDown = true
}

// ReleaseMouse releases the synthetic primary mouse button.
func (in *ScriptedInput) ReleaseMouse() {
	in.mouseDown = false
}

// TouchDown starts a touch at the given position. The position is
// recorded as the touch's start. Starting an id that is already down
// moves it instead.
func (in *ScriptedInput) TouchDown(id int, x, y float64) {
	pos := Vec2{X: x, Y: y}
	for i := range in.touches {
		if in.touches[i].ID == id {
			in.touches[i].Current = pos
			return
		}
	}
	in.touches = append(in.touches, Touch{ID: id, Start: pos, Current: pos})
}

// TouchMove moves a live touch. No-op for unknown ids.
func (in *ScriptedInput) TouchMove(id int, x, y float64) {
	for i := range in.touches {
		if in.touches[i].ID == id {
			in.touches[i].Current = Vec2{X: x, Y: y}
			return
		}
	}
}

// TouchUp lifts a live touch. No-op for unknown ids.
func (in *ScriptedInput) TouchUp(id int) {
	for i := range in.touches {
		if in.touches[i].ID == id {
			in.touches = append(in.touches[:i], in.touches[i+1:]...)
			return
		}
	}
}

func (in *ScriptedInput) Poll() {}

func (in *ScriptedInput) CursorPosition() (Vec2, bool) {
	return in.cursor, in.cursorOK
}

func (in *ScriptedInput) MousePressed() bool {
	return in.mouseDown
}

func (in *ScriptedInput) Touches() []Touch {
	return in.touches
}

func (in *ScriptedInput) Touch(id int) (Touch, bool) {
	for _, t := range in.touches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}
