package label

import (
	"image/color"

	"github.com/philipparndt/cubecard/pkg/geometry"
	"github.com/philipparndt/cubecard/pkg/projection"
)

// DefaultHoverColor is the highlight used when an axis does not set one
var DefaultHoverColor = color.RGBA{R: 0x35, G: 0x53, B: 0xff, A: 0xff}

// Axis is a navigation label attached to a 3D line
type Axis struct {
	Text       string
	From       geometry.Vector3 // Line origin, the label is measured from here
	To         geometry.Vector3 // Only the direction from From matters
	Color      color.RGBA
	HoverColor color.RGBA
	Distance   float64 // World units along the line
	Offset     float64 // Pixels perpendicular to the projected line
}

// NewAxis creates an axis label with the default hover color
func NewAxis(text string, from, to geometry.Vector3, c color.RGBA, distance, offset float64) Axis {
	return Axis{
		Text:       text,
		From:       from,
		To:         to,
		Color:      c,
		HoverColor: DefaultHoverColor,
		Distance:   distance,
		Offset:     offset,
	}
}

// Place computes this frame's placement for the axis label
func (a Axis) Place(cam projection.Camera, vp projection.Viewport) Placement {
	return Place(a.From, a.To, a.Distance, a.Offset, cam, vp)
}

// End returns the far point of the drawn line: the label position pushed
// one more unit outward so the label sits beside the line, not at its tip
func (a Axis) End() geometry.Vector3 {
	return a.From.Add(a.To.Sub(a.From).Normalize().Mul(a.Distance + 1))
}
