package geometry

import (
	"math"
	"testing"
)

func TestPerpendicular2D(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		px, py float64
	}{
		{"right", 10, 0, 0, 1},
		{"down", 0, 5, -1, 0},
		{"left", -3, 0, 0, -1},
		{"diagonal", 1, 1, -math.Sqrt2 / 2, math.Sqrt2 / 2},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := Perpendicular2D(tt.dx, tt.dy)
			if math.Abs(px-tt.px) > 1e-10 || math.Abs(py-tt.py) > 1e-10 {
				t.Errorf("Perpendicular2D failed: expected (%v, %v), got (%v, %v)", tt.px, tt.py, px, py)
			}
		})
	}
}

func TestPerpendicularIsOrthogonalUnit(t *testing.T) {
	v := NewVector2(3, -7)
	p := v.Perpendicular()

	if math.Abs(p.Length()-1) > 1e-10 {
		t.Errorf("Perpendicular length failed: expected 1, got %v", p.Length())
	}
	if dot := v.X*p.X + v.Y*p.Y; math.Abs(dot) > 1e-10 {
		t.Errorf("Perpendicular dot failed: expected 0, got %v", dot)
	}
}

func TestDistanceToSegment(t *testing.T) {
	a := NewVector2(0, 0)
	b := NewVector2(10, 0)

	tests := []struct {
		name     string
		p        Vector2
		expected float64
	}{
		{"above middle", NewVector2(5, 3), 3},
		{"beyond end", NewVector2(13, 4), 5},
		{"before start", NewVector2(-6, 8), 10},
		{"on segment", NewVector2(2, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := tt.p.DistanceToSegment(a, b); math.Abs(d-tt.expected) > 1e-10 {
				t.Errorf("DistanceToSegment failed: expected %v, got %v", tt.expected, d)
			}
		})
	}
}

func TestDistanceToDegenerateSegment(t *testing.T) {
	a := NewVector2(1, 1)
	p := NewVector2(4, 5)

	if d := p.DistanceToSegment(a, a); math.Abs(d-5) > 1e-10 {
		t.Errorf("DistanceToSegment failed: expected 5, got %v", d)
	}
}
