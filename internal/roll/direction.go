package roll

import "github.com/go-gl/mathgl/mgl64"

// Direction is a roll command
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Axis is a world rotation axis a cube can roll about
type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

// Vec3 returns the unit vector of the axis
func (a Axis) Vec3() mgl64.Vec3 {
	if a == AxisX {
		return mgl64.Vec3{1, 0, 0}
	}
	return mgl64.Vec3{0, 0, 1}
}

// move describes how a direction rolls the cube
type move struct {
	axis Axis
	sign int // Sign of the 90° rotation, for both the pivot arc and the body commit
	dx   int
	dz   int
	// trailing moves pivot about the far bottom edge: the body is shifted
	// back and the pivot forward before the arc, and the shift is undone on commit
	trailing bool
}

var moves = map[Direction]move{
	Up:    {axis: AxisX, sign: -1, dz: -1},
	Down:  {axis: AxisX, sign: 1, dz: 1, trailing: true},
	Left:  {axis: AxisZ, sign: 1, dx: -1},
	Right: {axis: AxisZ, sign: -1, dx: 1, trailing: true},
}

// step returns the world translation of one grid cell in the move direction
func (m move) step(unit float64) mgl64.Vec3 {
	return mgl64.Vec3{float64(m.dx) * unit, 0, float64(m.dz) * unit}
}
