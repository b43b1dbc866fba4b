package vjoy

import (
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SetDebug enables per-tick event logging to stderr.
func (m *Manager[T]) SetDebug(on bool) {
	m.debug = on
}

// debugLog prints the tick's emitted events to stderr.
// Only called when debug is enabled.
func (m *Manager[T]) debugLog() {
	for _, e := range m.events {
		_, _ = fmt.Fprintf(os.Stderr,
			"[vjoy] %v %s value=(%.1f, %.1f) delta=(%.2f, %.2f)\n",
			e.ID, e.Kind, e.Value.X, e.Value.Y, e.Delta.X, e.Delta.Y)
	}
}

// DebugDraw overlays each joystick's live state on the screen using
// ebitenutil.DebugPrint, hidden instances included. For development
// builds; call after Draw.
func (m *Manager[T]) DebugDraw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, m.debugString())
}

func (m *Manager[T]) debugString() string {
	var b strings.Builder
	for _, j := range m.joysticks {
		s := &j.state
		fmt.Fprintf(&b, "%v: pressed=%v delta=(%.2f, %.2f)",
			j.ID, j.pressed, s.Delta.X, s.Delta.Y)
		if ts := s.TouchState; ts != nil {
			if ts.IsMouse {
				fmt.Fprintf(&b, " mouse=(%.0f, %.0f)", ts.Current.X, ts.Current.Y)
			} else {
				fmt.Fprintf(&b, " touch %d=(%.0f, %.0f)", ts.ID, ts.Current.X, ts.Current.Y)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
