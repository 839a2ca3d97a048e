package orbit

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/philipparndt/cubecard/pkg/geometry"
	"github.com/philipparndt/cubecard/pkg/projection"
)

const (
	maxPitch = math.Pi/2 - 0.1 // Keep away from the poles, the up vector degenerates there

	// DefaultRotateSpeed is radians per dragged pixel
	DefaultRotateSpeed = 0.005
	// DefaultZoomStep scales the distance per wheel notch
	DefaultZoomStep = 0.1
)

// Orbit is a damped orbit camera around a target point. Input moves the goal
// angles; Update eases the actual angles toward them with critically damped
// springs, once per frame.
type Orbit struct {
	Target      geometry.Vector3
	FovY        float64
	MinDistance float64
	MaxDistance float64
	RotateSpeed float64
	ZoomStep    float64

	yaw, pitch, distance             float64
	goalYaw, goalPitch, goalDistance float64
	yawVel, pitchVel, distanceVel    float64

	homeYaw, homePitch, homeDistance float64

	spring harmonica.Spring
}

// New creates an orbit camera at eye looking at target
func New(eye, target geometry.Vector3, fovY float64, fps int) *Orbit {
	if fps <= 0 {
		fps = 60
	}

	offset := eye.Sub(target)
	distance := offset.Length()
	if distance == 0 {
		distance = 1
		offset = geometry.NewVector3(0, 0, 1)
	}
	yaw := math.Atan2(offset.X, offset.Z)
	pitch := clamp(math.Asin(offset.Y/distance), -maxPitch, maxPitch)

	o := &Orbit{
		Target:      target,
		FovY:        fovY,
		MinDistance: distance / 4,
		MaxDistance: distance * 4,
		RotateSpeed: DefaultRotateSpeed,
		ZoomStep:    DefaultZoomStep,
		spring:      harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
	o.homeYaw, o.homePitch, o.homeDistance = yaw, pitch, distance
	o.Reset()
	o.Settle()
	return o
}

// Rotate turns the goal by a mouse drag in pixels
func (o *Orbit) Rotate(dx, dy float64) {
	o.goalYaw -= dx * o.RotateSpeed
	o.goalPitch = clamp(o.goalPitch+dy*o.RotateSpeed, -maxPitch, maxPitch)
}

// Zoom moves the goal distance by wheel notches; positive zooms in
func (o *Orbit) Zoom(notches float64) {
	o.goalDistance = clamp(o.goalDistance*(1-notches*o.ZoomStep), o.MinDistance, o.MaxDistance)
}

// Reset returns the goal to the initial view
func (o *Orbit) Reset() {
	o.goalYaw, o.goalPitch, o.goalDistance = o.homeYaw, o.homePitch, o.homeDistance
}

// Update advances the springs by one frame
func (o *Orbit) Update() {
	o.yaw, o.yawVel = o.spring.Update(o.yaw, o.yawVel, o.goalYaw)
	o.pitch, o.pitchVel = o.spring.Update(o.pitch, o.pitchVel, o.goalPitch)
	o.distance, o.distanceVel = o.spring.Update(o.distance, o.distanceVel, o.goalDistance)
}

// Settle jumps straight to the goal
func (o *Orbit) Settle() {
	o.yaw, o.pitch, o.distance = o.goalYaw, o.goalPitch, o.goalDistance
	o.yawVel, o.pitchVel, o.distanceVel = 0, 0, 0
}

// Angles returns the current yaw, pitch (radians) and distance
func (o *Orbit) Angles() (yaw, pitch, distance float64) {
	return o.yaw, o.pitch, o.distance
}

// Position returns the eye position
func (o *Orbit) Position() geometry.Vector3 {
	x := o.distance * math.Cos(o.pitch) * math.Sin(o.yaw)
	y := o.distance * math.Sin(o.pitch)
	z := o.distance * math.Cos(o.pitch) * math.Cos(o.yaw)
	return o.Target.Add(geometry.NewVector3(x, y, z))
}

// Camera returns the current camera for rendering and projection
func (o *Orbit) Camera() projection.Camera {
	return projection.NewCamera(o.Position(), o.Target, o.FovY)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
