package vjoy

// Action is the pluggable side-effect hook fired on drag lifecycle
// transitions. For an engaged joystick, exactly one hook fires per tick:
// OnEndDrag on the release tick (release takes precedence), OnStartDrag
// on the acquisition tick, OnDrag on every tick in between. The state
// argument is a copy; mutating it has no effect on the pipeline.
type Action[T comparable] interface {
	OnStartDrag(id T, s State)
	OnDrag(id T, s State)
	OnEndDrag(id T, s State)
}

// NoAction is the default Action. It does nothing.
type NoAction[T comparable] struct{}

func (NoAction[T]) OnStartDrag(T, State) {}
func (NoAction[T]) OnDrag(T, State)      {}
func (NoAction[T]) OnEndDrag(T, State)   {}

// Callbacks adapts plain functions to the Action interface.
// Nil fields are skipped.
type Callbacks[T comparable] struct {
	StartDrag func(id T, s State)
	Drag      func(id T, s State)
	EndDrag   func(id T, s State)
}

func (c Callbacks[T]) OnStartDrag(id T, s State) {
	if c.StartDrag != nil {
		c.StartDrag(id, s)
	}
}

func (c Callbacks[T]) OnDrag(id T, s State) {
	if c.Drag != nil {
		c.Drag(id, s)
	}
}

func (c Callbacks[T]) OnEndDrag(id T, s State) {
	if c.EndDrag != nil {
		c.EndDrag(id, s)
	}
}
