package gamemath

import (
	"math"
	"testing"
)

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name            string
		v, half, extent float64
		want            float64
	}{
		{"inside", 400, 320, 1000, 400},
		{"low", 10, 320, 1000, 320},
		{"high", 990, 320, 1000, 680},
		{"exact fit", 50, 320, 640, 320},
		{"smaller than viewport centres", 10, 320, 96, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampAxis(tt.v, tt.half, tt.extent); got != tt.want {
				t.Errorf("ClampAxis(%v, %v, %v) = %v, want %v", tt.v, tt.half, tt.extent, got, tt.want)
			}
		})
	}
}

func TestSpringStepAtRest(t *testing.T) {
	s := Spring{Stiffness: 1800, Damping: 600, Mass: 50}
	pos, vel := s.Step(100, 0, 100, 1.0/60)
	if pos != 100 || vel != 0 {
		t.Errorf("at rest spring moved: pos=%v vel=%v", pos, vel)
	}
}

func TestSpringStepLaw(t *testing.T) {
	s := Spring{Stiffness: 1800, Damping: 600, Mass: 50}
	dt := 0.1
	pos, vel := s.Step(0, 0, 10, dt)
	// force = 18000, accel = 360, vel = 36, pos = 3.6
	if math.Abs(vel-36) > 1e-9 {
		t.Errorf("vel = %v, want 36", vel)
	}
	if math.Abs(pos-3.6) > 1e-9 {
		t.Errorf("pos = %v, want 3.6", pos)
	}
}

func TestSpringConverges(t *testing.T) {
	s := Spring{Stiffness: 1800, Damping: 600, Mass: 50}
	pos, vel := 0.0, 0.0
	for i := 0; i < 600; i++ {
		pos, vel = s.Step(pos, vel, 200, 1.0/60)
	}
	if math.Abs(pos-200) > 0.5 {
		t.Errorf("pos = %v after 10s, want ~200", pos)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("touching rects should not intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 32, H: 32}
	if !r.Contains(0, 0) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(32, 16) {
		t.Error("right edge should be exclusive")
	}
	if !r.Contains(16, 16) {
		t.Error("centre should be contained")
	}
}

func TestRectIntersectsCircle(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !r.IntersectsCircle(15, 5, 5) {
		t.Error("circle touching right edge should intersect")
	}
	if r.IntersectsCircle(20, 20, 5) {
		t.Error("distant circle should not intersect")
	}
	if !r.IntersectsCircle(5, 5, 1) {
		t.Error("circle inside should intersect")
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("Normalize(3,4) = (%v,%v)", x, y)
	}
	x, y = Normalize(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Normalize(0,0) = (%v,%v), want zero", x, y)
	}
}
