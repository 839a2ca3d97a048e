package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cubecard/internal/config"
	"github.com/philipparndt/cubecard/internal/input"
	"github.com/philipparndt/cubecard/internal/roll"
)

func newTestApp() *App {
	return New(config.Default(), Options{})
}

func TestNewMountsScene(t *testing.T) {
	app := newTestApp()

	if len(app.Labels) != 3 {
		t.Fatalf("New failed: expected 3 labels, got %d", len(app.Labels))
	}
	if !app.Input.dispatcher.Registered() {
		t.Error("New failed: expected dispatcher to be registered")
	}
	if app.Cube.animator.Phase() != roll.Idle {
		t.Errorf("New failed: expected idle animator, got %v", app.Cube.animator.Phase())
	}
	if len(app.Cube.wireframe) != 27 {
		t.Errorf("New failed: expected 27 wireframe segments, got %d", len(app.Cube.wireframe))
	}
}

func TestArrowKeyRollsCube(t *testing.T) {
	app := newTestApp()
	now := time.Now()

	app.Input.bus.PublishKey(input.KeyEvent{Key: input.KeyArrowRight, Action: input.KeyDown, Time: now})
	if !app.Cube.animator.Busy() {
		t.Fatal("Arrow key failed: expected roll in flight")
	}

	app.Cube.animator.Update(now.Add(time.Second))
	grid := app.Cube.animator.State().Grid
	if grid.X != 1 || grid.Z != 0 {
		t.Errorf("Arrow key failed: expected cell (1, 0), got (%d, %d)", grid.X, grid.Z)
	}
}

func TestUnmountStopsInput(t *testing.T) {
	app := newTestApp()
	app.unmount()

	if app.Input.bus.KeyListeners() != 0 {
		t.Errorf("unmount failed: expected 0 key listeners, got %d", app.Input.bus.KeyListeners())
	}
	app.Input.bus.PublishKey(input.KeyEvent{Key: input.KeyArrowUp, Action: input.KeyDown, Time: time.Now()})
	if app.Cube.animator.Busy() {
		t.Error("unmount failed: key reached the animator")
	}
}

func TestPointerDrivesSharedAnimator(t *testing.T) {
	app := newTestApp()
	now := time.Now()
	target := app.Labels[1].id

	app.Input.bus.PublishPointer(input.PointerEvent{Target: target, Action: input.PointerEnter, Time: now})
	if !app.Labels[1].color.Hovered() {
		t.Fatal("PointerEnter failed: expected label to be hovered")
	}
	if app.Labels[0].color.Hovered() || app.Labels[2].color.Hovered() {
		t.Error("PointerEnter failed: other labels should not be hovered")
	}

	got := app.Labels[1].color.Update(now.Add(time.Second))
	if got != app.Labels[1].axis.HoverColor {
		t.Errorf("PointerEnter failed: expected %v, got %v", app.Labels[1].axis.HoverColor, got)
	}

	app.Input.bus.PublishPointer(input.PointerEvent{Target: target, Action: input.PointerLeave, Time: now.Add(time.Second)})
	got = app.Labels[1].color.Update(now.Add(2 * time.Second))
	if got != app.Labels[1].axis.Color {
		t.Errorf("PointerLeave failed: expected %v, got %v", app.Labels[1].axis.Color, got)
	}
}

func TestHomeKeyResetsOrbit(t *testing.T) {
	app := newTestApp()
	_, _, home := app.Camera.orbit.Angles()

	app.Camera.orbit.Zoom(3)
	app.Camera.orbit.Settle()
	app.Input.bus.PublishKey(input.KeyEvent{Key: input.KeyHome, Action: input.KeyDown, Time: time.Now()})
	app.Camera.orbit.Settle()

	_, _, d := app.Camera.orbit.Angles()
	if d != home {
		t.Errorf("Home failed: expected distance %v, got %v", home, d)
	}
}

func TestApplyConfigKeepsCubeState(t *testing.T) {
	app := newTestApp()
	now := time.Now()

	app.Cube.animator.Move(roll.Up, now)
	app.Cube.animator.Update(now.Add(time.Second))
	before := app.Cube.animator.State()
	animator := app.Labels[0].color

	cfg := config.Default()
	cfg.Cube.Segments = 4
	cfg.Labels[0].Color = "#ff0000"
	app.applyConfig(cfg, now)

	if app.Cube.animator.State() != before {
		t.Errorf("applyConfig failed: expected state %v, got %v", before, app.Cube.animator.State())
	}
	if len(app.Cube.wireframe) != 75 {
		t.Errorf("applyConfig failed: expected 75 wireframe segments, got %d", len(app.Cube.wireframe))
	}
	if app.Labels[0].color != animator {
		t.Error("applyConfig failed: expected hover animator to be reused")
	}
	got := app.Labels[0].color.Update(now.Add(time.Second))
	if got != config.MustColor("#ff0000") {
		t.Errorf("applyConfig failed: expected label to fade to new color, got %v", got)
	}
}

func TestApplyConfigDropsStaleHover(t *testing.T) {
	app := newTestApp()
	now := time.Now()
	app.Input.hoveredTarget = app.Labels[0].id
	app.Labels[0].color.Enter(now)

	cfg := config.Default()
	cfg.Labels[0].Text = "BLOG"
	app.applyConfig(cfg, now)

	if app.Input.hoveredTarget != "" {
		t.Errorf("applyConfig failed: expected hover cleared, got %q", app.Input.hoveredTarget)
	}
	if app.Labels[0].color.Hovered() {
		t.Error("applyConfig failed: expected renamed label to leave hover")
	}
}

func TestConfigReloadIsAppliedOnFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubecard.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  fov_y: 35\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app := New(config.Default(), Options{ConfigPath: path})
	app.onConfigChanged(path)
	if app.Camera.orbit.FovY != 20 {
		t.Fatalf("onConfigChanged failed: config applied off the frame loop")
	}

	now := time.Now()
	app.applyPendingConfig(now)
	if app.Camera.orbit.FovY != 35 {
		t.Errorf("applyPendingConfig failed: expected fov 35, got %v", app.Camera.orbit.FovY)
	}
	if app.Reload.reloadedAt != now {
		t.Error("applyPendingConfig failed: expected reload time to be recorded")
	}
}

func TestConfigReloadErrorKeepsScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubecard.yaml")
	if err := os.WriteFile(path, []byte("cube:\n  size: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app := New(config.Default(), Options{ConfigPath: path})
	app.onConfigChanged(path)
	app.applyPendingConfig(time.Now())

	if app.Reload.lastError == "" {
		t.Error("onConfigChanged failed: expected error to be recorded")
	}
	if app.Config.Cube.Size != 1 {
		t.Errorf("onConfigChanged failed: expected size 1 to be kept, got %v", app.Config.Cube.Size)
	}
}

func TestPointInRotatedRect(t *testing.T) {
	center := rl.NewVector2(100, 100)
	size := rl.NewVector2(40, 10)

	tests := []struct {
		name  string
		p     rl.Vector2
		angle float32
		want  bool
	}{
		{"center", rl.NewVector2(100, 100), 0, true},
		{"inside along width", rl.NewVector2(118, 100), 0, true},
		{"outside height", rl.NewVector2(100, 108), 0, false},
		{"rotated inside", rl.NewVector2(100, 118), 90, true},
		{"rotated outside", rl.NewVector2(118, 100), 90, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pointInRotatedRect(tt.p, center, size, tt.angle)
			if got != tt.want {
				t.Errorf("pointInRotatedRect(%v, %v) = %v, want %v", tt.p, tt.angle, got, tt.want)
			}
		})
	}
}

func TestLabelIDsAreUnique(t *testing.T) {
	if labelID(0, "ABOUT") == labelID(1, "ABOUT") {
		t.Error("labelID failed: expected index to disambiguate duplicate text")
	}
}
