package vjoy

import "github.com/hajimehoshi/ebiten/v2"

// EventSink receives every joystick event as it is emitted. The vjoy/ecs
// subpackage provides a sink that publishes into a Donburi world.
type EventSink[T comparable] interface {
	EmitEvent(event Event[T])
}

// Manager owns a flat registry of joystick instances and runs the
// per-tick pipeline over them: input reduction, the three behavior
// stages, action dispatch, event emission, and visual placement, in
// that fixed order. Each stage is a full pass over all instances before
// the next stage starts. Manager is not safe for concurrent use; call
// Update from the game loop only.
type Manager[T comparable] struct {
	joysticks []*Joystick[T]
	input     InputSource
	sink      EventSink[T]
	events    []Event[T]
	bounds    Rect

	fixedDelta float64
	stateBuf   []*State
	debug      bool

	// Mouse press-origin tracking for the interaction signal.
	mouseDown    bool
	mouseStart   Vec2
	mouseStartOK bool
}

// New creates a Manager backed by the default ebiten input source.
func New[T comparable]() *Manager[T] {
	return &Manager[T]{input: NewEbitenInput()}
}

// SetInputSource replaces the input backend. Tests and automation
// typically install a ScriptedInput.
func (m *Manager[T]) SetInputSource(src InputSource) {
	m.input = src
}

// SetEventSink installs an optional sink that receives each event as it
// is emitted, in addition to the Events buffer.
func (m *Manager[T]) SetEventSink(sink EventSink[T]) {
	m.sink = sink
}

// SetBounds sets the screen rectangle passed to behaviors as
// Geometry.Bounds (used by constraint behaviors such as Bounded).
func (m *Manager[T]) SetBounds(bounds Rect) {
	m.bounds = bounds
}

// SetFixedDelta overrides the per-tick delta time in seconds. Zero (the
// default) derives it from ebiten.TPS().
func (m *Manager[T]) SetFixedDelta(dt float64) {
	m.fixedDelta = dt
}

// Add registers a joystick instance. Instances are processed, and their
// events ordered, in insertion order.
func (m *Manager[T]) Add(j *Joystick[T]) {
	if j == nil {
		panic("vjoy: cannot add nil joystick")
	}
	m.joysticks = append(m.joysticks, j)
}

// Remove unregisters a joystick instance. No-op if not registered.
func (m *Manager[T]) Remove(j *Joystick[T]) {
	for i, cur := range m.joysticks {
		if cur == j {
			copy(m.joysticks[i:], m.joysticks[i+1:])
			m.joysticks[len(m.joysticks)-1] = nil
			m.joysticks = m.joysticks[:len(m.joysticks)-1]
			return
		}
	}
}

// Get returns the first registered joystick with the given id.
func (m *Manager[T]) Get(id T) (*Joystick[T], bool) {
	for _, j := range m.joysticks {
		if j.ID == id {
			return j, true
		}
	}
	return nil, false
}

// Joysticks returns the registered instances. The returned slice MUST
// NOT be mutated.
func (m *Manager[T]) Joysticks() []*Joystick[T] {
	return m.joysticks
}

// Events returns the events emitted during the last Update, in emission
// order. The slice is reused by the next Update.
func (m *Manager[T]) Events() []Event[T] {
	return m.events
}

// Update runs one tick of the pipeline.
func (m *Manager[T]) Update() {
	dt := m.fixedDelta
	if dt == 0 {
		dt = 1.0 / float64(ebiten.TPS())
	}

	m.input.Poll()
	m.updateInteraction()
	m.updateInput()

	for _, j := range m.joysticks {
		j.Behavior.UpdateDelta(&j.state, m.geometry(j))
	}

	m.stateBuf = m.stateBuf[:0]
	for _, j := range m.joysticks {
		m.stateBuf = append(m.stateBuf, &j.state)
	}
	for _, j := range m.joysticks {
		j.Behavior.UpdateConstraints(&j.state, m.geometry(j), m.stateBuf)
	}

	for _, j := range m.joysticks {
		j.Behavior.Update(&j.state, m.geometry(j), dt)
	}

	m.dispatchActions()
	m.fireEvents()
	m.updateUI()

	if m.debug {
		m.debugLog()
	}
}

// updateInteraction derives the per-instance pressed signal: a joystick
// is pressed while a pointer whose press began inside its zone is still
// down. Geometric exit does not release; only the pointer lifting does.
func (m *Manager[T]) updateInteraction() {
	down := m.input.MousePressed()
	if down && !m.mouseDown {
		m.mouseStart, m.mouseStartOK = m.input.CursorPosition()
	} else if !down {
		m.mouseStartOK = false
	}
	m.mouseDown = down

	for _, j := range m.joysticks {
		if j.pressed {
			if j.pointerMouse {
				j.pressed = down
			} else if _, ok := m.input.Touch(j.pointerID); !ok {
				j.pressed = false
			}
			continue
		}
		rect := j.zoneRect()
		for _, t := range m.input.Touches() {
			if rect.Contains(t.Start) {
				j.pressed = true
				j.pointerMouse = false
				j.pointerID = t.ID
				break
			}
		}
		if !j.pressed && down && m.mouseStartOK && rect.Contains(m.mouseStart) {
			j.pressed = true
			j.pointerMouse = true
		}
	}
}

// updateInput is the reduction stage: it acquires, updates, and
// releases each joystick's TouchState from the current input snapshot.
// Acquisition tests a touch's start position against the zone, so a
// pointer can leave the zone mid-drag without being dropped. With
// multiple candidate touches the first match wins (iteration order).
func (m *Manager[T]) updateInput() {
	for _, j := range m.joysticks {
		s := &j.state
		s.JustReleased = false
		if s.TouchState == nil && !j.pressed {
			continue
		}
		if s.TouchState == nil {
			rect := j.zoneRect()
			var ts *TouchState
			for _, t := range m.input.Touches() {
				if rect.Contains(t.Start) {
					ts = &TouchState{ID: t.ID, Start: t.Current, Current: t.Current, JustPressed: true}
					break
				}
			}
			if ts == nil {
				// No touch landed here: synthesize a mouse pointer from
				// the cursor, falling back to the zone center.
				pos, ok := m.input.CursorPosition()
				if !ok {
					pos = Vec2{X: j.X, Y: j.Y}
				}
				ts = &TouchState{ID: 0, IsMouse: true, Start: pos, Current: pos, JustPressed: true}
			}
			s.TouchState = ts
			continue
		}
		ts := s.TouchState
		ts.JustPressed = false
		if !j.pressed {
			s.TouchState = nil
			s.JustReleased = true
			continue
		}
		if ts.IsMouse {
			if pos, ok := m.input.CursorPosition(); ok && pos != ts.Current {
				ts.Current = pos
			}
		} else if t, ok := m.input.Touch(ts.ID); ok && t.Current != ts.Current {
			ts.Current = t.Current
		}
	}
}

// dispatchActions fires at most one action hook per instance: release
// takes precedence, then press, then drag.
func (m *Manager[T]) dispatchActions() {
	for _, j := range m.joysticks {
		if j.Action == nil {
			continue
		}
		switch s := j.state; {
		case s.JustReleased:
			j.Action.OnEndDrag(j.ID, j.State())
		case s.TouchState != nil && s.TouchState.JustPressed:
			j.Action.OnStartDrag(j.ID, j.State())
		case s.TouchState != nil:
			j.Action.OnDrag(j.ID, j.State())
		}
	}
}

// fireEvents derives the discrete events for this tick. On a press tick
// the Press event always precedes the Drag event.
func (m *Manager[T]) fireEvents() {
	m.events = m.events[:0]
	for _, j := range m.joysticks {
		s := &j.state
		if s.JustReleased {
			m.emit(Event[T]{ID: j.ID, Kind: EventUp, Delta: s.Delta})
			continue
		}
		if ts := s.TouchState; ts != nil {
			if ts.JustPressed {
				m.emit(Event[T]{ID: j.ID, Kind: EventPress, Value: ts.Current, Delta: s.Delta})
			}
			m.emit(Event[T]{ID: j.ID, Kind: EventDrag, Value: ts.Current, Delta: s.Delta})
		}
	}
}

func (m *Manager[T]) emit(e Event[T]) {
	m.events = append(m.events, e)
	if m.sink != nil {
		m.sink.EmitEvent(e)
	}
}

// updateUI writes base and knob offsets from the computed state. A
// joystick with no background skips placement entirely.
func (m *Manager[T]) updateUI() {
	for _, j := range m.joysticks {
		bg := j.Background
		if bg == nil {
			continue
		}
		s := &j.state
		bg.OffsetX = s.BaseOffset.X
		bg.OffsetY = s.BaseOffset.Y
		knob := j.Knob
		if knob == nil {
			continue
		}
		bgHalf := bg.HalfSize()
		knobHalf := knob.HalfSize()
		knob.OffsetX = s.BaseOffset.X + bgHalf.X + knobHalf.X + (s.Delta.X-1)*bgHalf.X
		knob.OffsetY = s.BaseOffset.Y + bgHalf.Y + knobHalf.Y + (-s.Delta.Y-1)*bgHalf.Y
	}
}

// geometry builds the screen-space snapshot handed to behavior hooks.
// The base rectangle is positioned from the current BaseOffset rather
// than the element's last placed offset so behaviors see this tick's
// value.
func (m *Manager[T]) geometry(j *Joystick[T]) Geometry {
	g := Geometry{Zone: j.zoneRect(), Bounds: m.bounds}
	min := g.Zone.Min()
	if bg := j.Background; bg != nil {
		g.Base = Rect{
			X:      min.X + j.state.BaseOffset.X,
			Y:      min.Y + j.state.BaseOffset.Y,
			Width:  bg.Width,
			Height: bg.Height,
		}
	}
	if k := j.Knob; k != nil {
		g.Knob = Rect{X: min.X + k.OffsetX, Y: min.Y + k.OffsetY, Width: k.Width, Height: k.Height}
	}
	return g
}

// Draw renders each visible joystick's background and knob images,
// scaled to the element size, at the element's current offset. Hidden
// joysticks and elements without an Image are skipped; hosts doing
// their own rendering can ignore Draw and read the element offsets
// instead.
func (m *Manager[T]) Draw(screen *ebiten.Image) {
	for _, j := range m.joysticks {
		if j.Hidden {
			continue
		}
		min := j.zoneRect().Min()
		drawElement(screen, j.Background, min)
		drawElement(screen, j.Knob, min)
	}
}

func drawElement(screen *ebiten.Image, e *Element, origin Vec2) {
	if e == nil || e.Image == nil {
		return
	}
	w, h := e.Image.Bounds().Dx(), e.Image.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(e.Width/float64(w), e.Height/float64(h))
	op.GeoM.Translate(origin.X+e.OffsetX, origin.Y+e.OffsetY)
	screen.DrawImage(e.Image, &op)
}
