package roll

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Orientation is the cube body's committed rotation as an exact signed
// permutation matrix (row-major). Only products of quarter turns are ever
// stored, so repeated rolls cannot accumulate floating point drift.
type Orientation [3][3]int

// Identity is the unrotated orientation
var Identity = Orientation{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// QuarterTurn returns the rotation by sign*90° about a world axis
func QuarterTurn(axis Axis, sign int) Orientation {
	s := 1
	if sign < 0 {
		s = -1
	}
	if axis == AxisX {
		return Orientation{
			{1, 0, 0},
			{0, 0, -s},
			{0, s, 0},
		}
	}
	return Orientation{
		{0, -s, 0},
		{s, 0, 0},
		{0, 0, 1},
	}
}

// Mul returns o * other
func (o Orientation) Mul(other Orientation) Orientation {
	var result Orientation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += o[i][k] * other[k][j]
			}
		}
	}
	return result
}

// RotateWorld applies a quarter turn about a world axis on top of o
func (o Orientation) RotateWorld(axis Axis, sign int) Orientation {
	return QuarterTurn(axis, sign).Mul(o)
}

// IsIdentity reports whether o is the unrotated orientation
func (o Orientation) IsIdentity() bool {
	return o == Identity
}

// Mat3 converts to a mathgl matrix
func (o Orientation) Mat3() mgl64.Mat3 {
	row := func(i int) mgl64.Vec3 {
		return mgl64.Vec3{float64(o[i][0]), float64(o[i][1]), float64(o[i][2])}
	}
	return mgl64.Mat3FromRows(row(0), row(1), row(2))
}

// Quat converts to a unit quaternion for rendering
func (o Orientation) Quat() mgl64.Quat {
	return mgl64.Mat4ToQuat(o.Mat3().Mat4()).Normalize()
}

// Up returns which body axis currently points up, e.g. "+Y" when unrotated
func (o Orientation) Up() string {
	names := [3]string{"X", "Y", "Z"}
	for j := 0; j < 3; j++ {
		switch o[1][j] {
		case 1:
			return "+" + names[j]
		case -1:
			return "-" + names[j]
		}
	}
	return "?"
}

func (o Orientation) String() string {
	return fmt.Sprintf("%v", [3][3]int(o))
}
