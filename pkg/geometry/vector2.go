package geometry

import "math"

// Vector2 is a point or direction in screen space (pixels, origin top-left)
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Perpendicular returns the unit vector rotated 90° from v
func (v Vector2) Perpendicular() Vector2 {
	x, y := Perpendicular2D(v.X, v.Y)
	return Vector2{X: x, Y: y}
}

// Perpendicular2D returns the unit vector (-dy, dx)/|d|.
// A zero-length input yields the zero vector so callers get a zero offset
// instead of NaNs.
func Perpendicular2D(dx, dy float64) (float64, float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return -dy / length, dx / length
}

// DistanceToSegment returns the distance from v to the segment a-b
func (v Vector2) DistanceToSegment(a, b Vector2) float64 {
	ab := b.Sub(a)
	lengthSq := ab.X*ab.X + ab.Y*ab.Y
	if lengthSq == 0 {
		return v.Distance(a)
	}

	t := ((v.X-a.X)*ab.X + (v.Y-a.Y)*ab.Y) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return v.Distance(a.Add(ab.Mul(t)))
}
