package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cubecard/internal/roll"
	"github.com/philipparndt/cubecard/version"
)

// reloadToastDuration is how long the reload notice stays on screen
const reloadToastDuration = 2 * time.Second

// drawUI draws the overlay: cube state, controls and status line
func (app *App) drawUI(now time.Time) {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	rl.DrawTextEx(app.UI.font, app.Config.Window.Title, rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.White)
	y += lineHeight

	state := app.Cube.animator.State()
	cellText := fmt.Sprintf("Cell: (%d, %d)  Up: %s", state.Grid.X, state.Grid.Z, state.Orientation.Up())
	rl.DrawTextEx(app.UI.font, cellText, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
	y += lineHeight

	if app.Cube.animator.Phase() == roll.Rotating {
		rl.DrawTextEx(app.UI.font, "  Rolling...", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(255, 200, 100, 255))
	}
	y += lineHeight

	rl.DrawTextEx(app.UI.font, "  Arrow keys: Roll the cube", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(144, 238, 144, 255))
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  Drag: Orbit  Wheel: Zoom", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(144, 238, 144, 255))
	y += lineHeight
	rl.DrawTextEx(app.UI.font, "  Home: Reset view", rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.NewColor(144, 238, 144, 255))

	app.drawReloadStatus(now)

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

// drawReloadStatus shows a short notice after a config reload, or the last
// reload error until the next successful one
func (app *App) drawReloadStatus(now time.Time) {
	app.Reload.mu.Lock()
	reloadedAt := app.Reload.reloadedAt
	lastError := app.Reload.lastError
	app.Reload.mu.Unlock()

	fontSize := float32(14)
	screenWidth := float32(rl.GetScreenWidth())

	var text string
	c := rl.NewColor(100, 255, 100, 255)
	switch {
	case lastError != "":
		text = "Config error: " + lastError
		c = rl.NewColor(255, 100, 100, 255)
	case !reloadedAt.IsZero() && now.Sub(reloadedAt) < reloadToastDuration:
		text = "Config reloaded"
	default:
		return
	}

	width := rl.MeasureTextEx(app.UI.font, text, fontSize, 1).X
	rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: screenWidth - width - 10, Y: 10}, fontSize, 1, c)
}
