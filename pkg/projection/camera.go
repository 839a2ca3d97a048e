package projection

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/cubecard/pkg/geometry"
)

// Mode selects the projection type of a camera
type Mode int

const (
	Perspective Mode = iota
	Orthographic
)

// Default clip planes, matching raylib's BeginMode3D so projected labels line
// up with what the renderer draws
const (
	DefaultNear = 0.01
	DefaultFar  = 1000.0
)

// Camera describes how the world is viewed. It is a plain value; the scene
// owns and mutates it, projection code only reads it.
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FovY     float64 // Vertical field of view in degrees (orthographic: visible height in world units)
	Near     float64
	Far      float64
	Mode     Mode
}

// NewCamera creates a perspective camera with a +Y up vector
func NewCamera(position, target geometry.Vector3, fovY float64) Camera {
	return Camera{
		Position: position,
		Target:   target,
		Up:       geometry.NewVector3(0, 1, 0),
		FovY:     fovY,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Mode:     Perspective,
	}
}

// View returns the world-to-camera transform
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position.Vec3(), c.Target.Vec3(), c.Up.Vec3())
}

// Projection returns the camera-to-clip transform for the given aspect ratio
func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	near, far := c.Near, c.Far
	if near <= 0 {
		near = DefaultNear
	}
	if far <= near {
		far = DefaultFar
	}

	if c.Mode == Orthographic {
		top := c.FovY / 2
		right := top * aspect
		return mgl64.Ortho(-right, right, -top, top, near, far)
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, near, far)
}

// ViewProjection returns projection * view for the given viewport
func (c Camera) ViewProjection(vp Viewport) mgl64.Mat4 {
	return c.Projection(vp.Aspect()).Mul4(c.View())
}

// Forward returns the normalized viewing direction
func (c Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}
