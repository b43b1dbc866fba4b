package vjoy

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     int     `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences synthetic input across ticks for automated testing
// and replay. Load one with LoadScript and call Step once per tick,
// before Manager.Update.
//
// Supported actions: "touchdown", "touchmove", "touchup" (id, x, y),
// "mousemove" (x, y), "mousedown", "mouseup", "wait" (frames), and
// "drag" (id, fromX/fromY to toX/toY: a touch down, frames-1
// interpolated moves, then a touch up on the following tick). One
// action executes per tick; wait spans the number of frames it names.
type Script struct {
	input     *ScriptedInput
	steps     []scriptStep
	cursor    int
	waitCount int
	drag      *dragState
	done      bool
}

type dragState struct {
	id       int
	from, to Vec2
	frame    int
	frames   int
}

// LoadScript parses a JSON input script that will drive the given
// scripted input source.
func LoadScript(jsonData []byte, input *ScriptedInput) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	if input == nil {
		return nil, fmt.Errorf("parse input script: nil input source")
	}
	return &Script{input: input, steps: file.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Step advances the script by one tick.
func (r *Script) Step() {
	if r.done {
		return
	}
	if r.drag != nil {
		r.stepDrag()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.finishCheck()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "touchdown":
		r.input.TouchDown(st.ID, st.X, st.Y)
	case "touchmove":
		r.input.TouchMove(st.ID, st.X, st.Y)
	case "touchup":
		r.input.TouchUp(st.ID)
	case "mousemove":
		r.input.MoveCursor(st.X, st.Y)
	case "mousedown":
		r.input.PressMouse()
	case "mouseup":
		r.input.ReleaseMouse()
	case "wait":
		if st.Frames > 1 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		r.drag = &dragState{
			id:     st.ID,
			from:   Vec2{X: st.FromX, Y: st.FromY},
			to:     Vec2{X: st.ToX, Y: st.ToY},
			frames: frames,
		}
		r.input.TouchDown(st.ID, st.FromX, st.FromY)
	}

	r.finishCheck()
}

// stepDrag advances an in-flight drag by one tick: interpolated moves
// between the endpoints, then a touch up on the tick after the endpoint
// so the final position is observable for a full tick.
func (r *Script) stepDrag() {
	d := r.drag
	d.frame++
	if d.frame >= d.frames {
		r.input.TouchUp(d.id)
		r.drag = nil
		r.finishCheck()
		return
	}
	t := float64(d.frame) / float64(d.frames-1)
	pos := d.from.Add(d.to.Sub(d.from).Mul(t))
	r.input.TouchMove(d.id, pos.X, pos.Y)
	r.finishCheck()
}

func (r *Script) finishCheck() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.drag == nil {
		r.done = true
	}
}
