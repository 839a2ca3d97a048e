package label

import (
	"math"

	"github.com/philipparndt/cubecard/pkg/geometry"
	"github.com/philipparndt/cubecard/pkg/projection"
)

// MinScreenLength is the shortest projected line (in pixels) that still has
// a usable on-screen direction. Lines pointing straight at the camera project
// to a few ULPs of noise, which must not turn into an arbitrary offset.
const MinScreenLength = 1e-6

// Placement is the per-frame result for one label
type Placement struct {
	Anchor       geometry.Vector3 // 3D point the 2D label is drawn at
	AngleDegrees float64          // On-screen rotation, always in [-90, 90]
	Screen       geometry.Vector2 // Projected anchor in pixels
	Unoffset     geometry.Vector2 // Projected label position before the perpendicular push
}

// Place computes where a label for the line from->to sits this frame.
// The label starts distance units along the line, is pushed offset pixels
// perpendicular to the line's projection and is mapped back to 3D at the
// same depth, so the push never moves it toward or away from the camera.
// Place keeps no state between calls.
func Place(from, to geometry.Vector3, distance, offset float64, cam projection.Camera, vp projection.Viewport) Placement {
	dir := to.Sub(from).Normalize()
	labelPos := from.Add(dir.Mul(distance))

	fromScreen, _ := projection.ProjectVector(from, cam, vp)
	labelScreen, labelDepth := projection.ProjectVector(labelPos, cam, vp)

	lineDir := labelScreen.Sub(fromScreen)
	if lineDir.Length() < MinScreenLength {
		lineDir = geometry.Vector2{}
	}

	screen := labelScreen.Add(lineDir.Perpendicular().Mul(offset))
	anchor, err := projection.Unproject(screen.X, screen.Y, labelDepth, cam, vp)
	if err != nil {
		anchor = labelPos
		screen = labelScreen
	}

	return Placement{
		Anchor:       anchor,
		AngleDegrees: FoldAngle(math.Atan2(lineDir.Y, lineDir.X) * 180 / math.Pi),
		Screen:       screen,
		Unoffset:     labelScreen,
	}
}

// FoldAngle maps an angle in (-180, 180] to [-90, 90] by turning it half a
// revolution, so text never renders upside down
func FoldAngle(degrees float64) float64 {
	if degrees > 90 {
		return degrees - 180
	}
	if degrees < -90 {
		return degrees + 180
	}
	return degrees
}
