package app

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cubecard/internal/config"
	"github.com/philipparndt/cubecard/internal/roll"
)

// drawGrid draws the floor grid on the XZ plane with heavier section lines
func (app *App) drawGrid() {
	g := app.Config.Grid
	cellColor := config.MustColor(g.CellColor)
	sectionColor := config.MustColor(g.SectionColor)

	extent := float32(g.Extent)
	cell := float32(g.CellSize)
	steps := int(extent / cell)
	sectionEvery := int(g.SectionSize / g.CellSize)
	if sectionEvery < 1 {
		sectionEvery = 1
	}

	for i := -steps; i <= steps; i++ {
		c := cellColor
		if i%sectionEvery == 0 {
			c = sectionColor
		}
		pos := float32(i) * cell
		rl.DrawLine3D(rl.NewVector3(pos, 0, -extent), rl.NewVector3(pos, 0, extent), c)
		rl.DrawLine3D(rl.NewVector3(-extent, 0, pos), rl.NewVector3(extent, 0, pos), c)
	}
}

// drawCube draws the body inside the pivot's transform: the solid faces,
// the outline and the subdivided wireframe
func (app *App) drawCube() {
	pivot := app.Cube.animator.Pivot()
	body := app.Cube.animator.Body()
	size := app.Cube.size

	rl.PushMatrix()
	applyNode(pivot)
	applyNode(body)

	rl.DrawCube(rl.NewVector3(0, 0, 0), size, size, size, config.MustColor(app.Config.Cube.Color))
	rl.DrawCubeWires(rl.NewVector3(0, 0, 0), size, size, size, config.MustColor(app.Config.Cube.OutlineColor))

	wireColor := config.MustColor(app.Config.Cube.WireframeColor)
	for _, s := range app.Cube.wireframe {
		rl.DrawLine3D(toRaylib3(s.Start), toRaylib3(s.End), wireColor)
	}

	rl.PopMatrix()
}

// applyNode multiplies the current matrix by a node's translate-then-rotate
func applyNode(n roll.Node) {
	rl.Translatef(float32(n.Position[0]), float32(n.Position[1]), float32(n.Position[2]))

	q := n.Rotation.Normalize()
	w := math32.Max(-1, math32.Min(1, float32(q.W)))
	angle := 2 * math32.Acos(w)
	s := math32.Sqrt(1 - w*w)
	if s < 1e-6 {
		return
	}
	rl.Rotatef(angle*180/math32.Pi, float32(q.V[0])/s, float32(q.V[1])/s, float32(q.V[2])/s)
}

// drawAxisLines draws each navigation line from its origin to just past the label
func (app *App) drawAxisLines() {
	for i := range app.Labels {
		l := &app.Labels[i]
		rl.DrawLine3D(toRaylib3(l.axis.From), toRaylib3(l.axis.End()), l.color.Color())
	}
}

// drawLabels draws label text in screen space at the placed anchor,
// rotated to follow the projected line
func (app *App) drawLabels() {
	fontSize := app.UI.fontSize
	spacing := fontSize / 10
	for i := range app.Labels {
		l := &app.Labels[i]
		size := rl.MeasureTextEx(app.UI.font, l.axis.Text, fontSize, spacing)
		l.textSize = size

		origin := rl.NewVector2(size.X/2, size.Y/2)
		rl.DrawTextPro(app.UI.font, l.axis.Text, toRaylib2(l.placement.Screen), origin,
			float32(l.placement.AngleDegrees), fontSize, spacing, l.color.Color())
	}
}
