package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cubecard/pkg/geometry"
	"github.com/philipparndt/cubecard/pkg/projection"
)

// toRaylibCamera converts the orbit camera to raylib's camera
func toRaylibCamera(cam projection.Camera) rl.Camera3D {
	mode := rl.CameraPerspective
	if cam.Mode == projection.Orthographic {
		mode = rl.CameraOrthographic
	}
	return rl.Camera3D{
		Position:   toRaylib3(cam.Position),
		Target:     toRaylib3(cam.Target),
		Up:         toRaylib3(cam.Up),
		Fovy:       float32(cam.FovY),
		Projection: mode,
	}
}

// viewport returns the current render size in screen pixels
func viewport() projection.Viewport {
	return projection.Viewport{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}
}

// resetCameraView eases the orbit back to the configured eye position
func (app *App) resetCameraView() {
	app.Camera.orbit.Reset()
}

func projectVector(p geometry.Vector3, cam projection.Camera, vp projection.Viewport) geometry.Vector2 {
	v, _ := projection.ProjectVector(p, cam, vp)
	return v
}

func toRaylib3(v geometry.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func toRaylib2(v geometry.Vector2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func fromRaylib2(v rl.Vector2) geometry.Vector2 {
	return geometry.NewVector2(float64(v.X), float64(v.Y))
}
