package vjoy

import (
	"math"
	"testing"
)

func TestRectFromCenterSize(t *testing.T) {
	r := RectFromCenterSize(Vec2{X: 10, Y: 20}, Vec2{X: 100, Y: 50})
	if r.X != -40 || r.Y != -5 || r.Width != 100 || r.Height != 50 {
		t.Errorf("unexpected rect: %+v", r)
	}
	if c := r.Center(); c.X != 10 || c.Y != 20 {
		t.Errorf("center = %+v, want (10, 20)", c)
	}
	if h := r.HalfSize(); h.X != 50 || h.Y != 25 {
		t.Errorf("half size = %+v, want (50, 25)", h)
	}
	if m := r.Min(); m.X != -40 || m.Y != -5 {
		t.Errorf("min = %+v, want (-40, -5)", m)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromCenterSize(Vec2{}, Vec2{X: 100, Y: 100})

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{}, true},
		{"inside", Vec2{X: 10, Y: -10}, true},
		{"left edge", Vec2{X: -50, Y: 0}, true},
		{"corner", Vec2{X: 50, Y: 50}, true},
		{"outside left", Vec2{X: -51, Y: 0}, false},
		{"outside right", Vec2{X: 51, Y: 0}, false},
		{"outside top", Vec2{X: 0, Y: -51}, false},
		{"outside bottom", Vec2{X: 0, Y: 51}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestVec2Math(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got.X != 4 || got.Y != 2 {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got.X != 2 || got.Y != 6 {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Mul(2); got.X != 6 || got.Y != 8 {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
