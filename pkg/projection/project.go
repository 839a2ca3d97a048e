package projection

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/cubecard/pkg/geometry"
)

// Viewport is the drawable area in pixels
type Viewport struct {
	Width  int
	Height int
}

// Aspect returns width / height, or 1 for an empty viewport
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 || v.Width <= 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// Empty reports whether the viewport has no drawable area
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Project maps a world point to pixel coordinates with the origin in the
// top-left corner. depth is the window depth in [0, 1] for points between
// the near and far planes.
func Project(point geometry.Vector3, cam Camera, vp Viewport) (x, y, depth float64) {
	win := mgl64.Project(point.Vec3(), cam.View(), cam.Projection(vp.Aspect()), 0, 0, vp.Width, vp.Height)
	return win[0], float64(vp.Height) - win[1], win[2]
}

// ProjectVector is Project returning the screen position as a Vector2
func ProjectVector(point geometry.Vector3, cam Camera, vp Viewport) (geometry.Vector2, float64) {
	x, y, depth := Project(point, cam, vp)
	return geometry.NewVector2(x, y), depth
}

// Unproject is the inverse of Project for a known depth
func Unproject(x, y, depth float64, cam Camera, vp Viewport) (geometry.Vector3, error) {
	if vp.Empty() {
		return geometry.Vector3{}, fmt.Errorf("cannot unproject into empty viewport %dx%d", vp.Width, vp.Height)
	}

	win := mgl64.Vec3{x, float64(vp.Height) - y, depth}
	obj, err := mgl64.UnProject(win, cam.View(), cam.Projection(vp.Aspect()), 0, 0, vp.Width, vp.Height)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("failed to unproject (%.2f, %.2f): %w", x, y, err)
	}
	return geometry.FromVec3(obj), nil
}
