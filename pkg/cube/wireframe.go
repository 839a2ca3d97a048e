package cube

import "github.com/philipparndt/cubecard/pkg/geometry"

// Segment is a single wireframe line
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Wireframe returns the lattice lines of a cube of the given size centred on
// the origin. Each face is split into segments x segments quads; for every
// lattice point one line runs parallel to each axis, so the result holds
// 3*(segments+1)^2 lines, including the inner ones.
func Wireframe(size float64, segments int) []Segment {
	if segments < 1 {
		segments = 1
	}

	step := size / float64(segments)
	half := size / 2
	lines := make([]Segment, 0, 3*(segments+1)*(segments+1))

	for i := 0; i <= segments; i++ {
		for j := 0; j <= segments; j++ {
			a := -half + float64(i)*step
			b := -half + float64(j)*step

			// Parallel to X
			lines = append(lines, Segment{
				Start: geometry.NewVector3(-half, a, b),
				End:   geometry.NewVector3(half, a, b),
			})
			// Parallel to Y
			lines = append(lines, Segment{
				Start: geometry.NewVector3(a, -half, b),
				End:   geometry.NewVector3(a, half, b),
			})
			// Parallel to Z
			lines = append(lines, Segment{
				Start: geometry.NewVector3(a, b, -half),
				End:   geometry.NewVector3(a, b, half),
			})
		}
	}

	return lines
}

// Corners returns the eight corners of a cube of the given size centred on the origin
func Corners(size float64) [8]geometry.Vector3 {
	h := size / 2
	return [8]geometry.Vector3{
		{X: -h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h},
		{X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h},
		{X: -h, Y: h, Z: h},
	}
}
