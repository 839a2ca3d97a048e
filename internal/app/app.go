package app

import (
	"io"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/cubecard/internal/anim"
	"github.com/philipparndt/cubecard/internal/config"
	"github.com/philipparndt/cubecard/internal/input"
	"github.com/philipparndt/cubecard/internal/orbit"
	"github.com/philipparndt/cubecard/internal/roll"
	"github.com/philipparndt/cubecard/pkg/cube"
	"github.com/philipparndt/cubecard/pkg/geometry"
	"github.com/philipparndt/cubecard/pkg/label"
)

// Options control how the viewer starts
type Options struct {
	ConfigPath string
	Watch      bool
	Verbose    bool
	Logger     *log.Logger
}

// App is the scene: it owns the window, camera and render nodes and mounts
// the roll animator, label placement and hover animators onto them
type App struct {
	Config config.Config
	Camera CameraState
	Cube   CubeState
	Labels []LabelState
	Input  InputState
	Reload ReloadState
	UI     UIState

	logger  *log.Logger
	verbose bool
}

// New builds the scene state without touching the window
func New(cfg config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	app := &App{
		Config:  cfg,
		logger:  logger,
		verbose: opts.Verbose,
		Reload:  ReloadState{configPath: opts.ConfigPath},
		UI:      UIState{fontSize: 20},
	}

	app.Camera.orbit = orbit.New(vec3(cfg.Camera.Position), vec3(cfg.Camera.Target), cfg.Camera.FovY, cfg.Window.FPS)

	app.Cube.pivot = roll.NewNode(mgl64.Vec3{})
	app.Cube.body = roll.NewNode(mgl64.Vec3{})
	app.Cube.animator = roll.NewAnimator()
	app.Cube.animator.SetDuration(cfg.RollDuration())
	app.Cube.animator.Mount(app.Cube.pivot, app.Cube.body)
	app.Cube.animator.OnCommit(func(s roll.State) {
		if app.verbose {
			app.logger.Printf("rolled to (%d, %d), %s up", s.Grid.X, s.Grid.Z, s.Orientation.Up())
		}
	})
	app.applyCubeConfig(cfg)

	app.Labels = buildLabels(cfg, nil, time.Now())
	app.mount()
	return app
}

// mount registers the input listeners for this scene instance
func (app *App) mount() {
	app.Input.bus = input.NewBus()
	app.Input.dispatcher = input.NewDispatcher(app.Cube.animator)
	app.Input.dispatcher.OnDropped(func(dir roll.Direction) {
		if app.verbose {
			app.logger.Printf("dropped %s: roll in flight", dir)
		}
	})
	app.Input.dispatcher.Register(app.Input.bus)
	app.Input.unsubscribePointer = app.Input.bus.SubscribePointer(app.handlePointer)
	app.Input.unsubscribeKeys = app.Input.bus.SubscribeKeys(app.handleViewKeys)
}

// unmount removes every listener registered by mount
func (app *App) unmount() {
	app.Input.dispatcher.Unregister()
	if app.Input.unsubscribePointer != nil {
		app.Input.unsubscribePointer()
		app.Input.unsubscribePointer = nil
	}
	if app.Input.unsubscribeKeys != nil {
		app.Input.unsubscribeKeys()
		app.Input.unsubscribeKeys = nil
	}
}

// Run opens the window and runs the frame loop until the window closes
func Run(cfg config.Config, opts Options) error {
	app := New(cfg, opts)
	defer app.unmount()

	if opts.Watch && opts.ConfigPath != "" {
		if err := app.setupConfigWatcher(); err != nil {
			app.logger.Printf("warning: failed to set up config watching: %v", err)
		} else {
			defer app.Reload.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	app.UI.font = rl.GetFontDefault()

	app.logger.Printf("window %dx%d, %d labels", cfg.Window.Width, cfg.Window.Height, len(app.Labels))

	for !rl.WindowShouldClose() {
		now := time.Now()

		app.applyPendingConfig(now)

		// Update
		app.handleInput(now)
		app.update(now)

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(config.MustColor(app.Config.Window.Background))

		rl.BeginMode3D(app.Camera.camera)
		if app.Config.Grid.Visible {
			app.drawGrid()
		}
		app.drawCube()
		app.drawAxisLines()
		rl.EndMode3D()

		app.drawLabels()
		app.drawUI(now)

		rl.EndDrawing()
	}

	return nil
}

// update advances every animation to now and recomputes label placement
func (app *App) update(now time.Time) {
	app.Camera.orbit.Update()
	app.Camera.camera = toRaylibCamera(app.Camera.orbit.Camera())

	app.Cube.animator.Update(now)

	cam := app.Camera.orbit.Camera()
	vp := viewport()
	for i := range app.Labels {
		l := &app.Labels[i]
		l.placement = l.axis.Place(cam, vp)
		l.lineStart = toRaylib2(projectVector(l.axis.From, cam, vp))
		l.lineEnd = toRaylib2(projectVector(l.axis.End(), cam, vp))
		l.color.Update(now)
	}
}

// applyCubeConfig copies cube settings that can change on reload
func (app *App) applyCubeConfig(cfg config.Config) {
	app.Cube.size = float32(cfg.Cube.Size)
	app.Cube.wireframe = cube.Wireframe(cfg.Cube.Size, cfg.Cube.Segments)
	app.Cube.animator.SetDuration(cfg.RollDuration())
}

// buildLabels creates label state from config, reusing the hover animators
// of labels at the same index so a reload fades instead of jumping
func buildLabels(cfg config.Config, previous []LabelState, now time.Time) []LabelState {
	labels := make([]LabelState, 0, len(cfg.Labels))
	for i, lc := range cfg.Labels {
		axis := label.NewAxis(lc.Text, vec3(lc.From), vec3(lc.To), config.MustColor(lc.Color), lc.Distance, lc.Offset)
		if lc.HoverColor != "" {
			axis.HoverColor = config.MustColor(lc.HoverColor)
		}

		var animator *anim.ColorAnimator
		if i < len(previous) {
			animator = previous[i].color
			animator.SetColors(axis.Color, axis.HoverColor, now)
		} else {
			animator = anim.NewColorAnimator(axis.Color, axis.HoverColor)
		}
		animator.SetDuration(cfg.HoverDuration())

		labels = append(labels, LabelState{
			id:    labelID(i, lc.Text),
			axis:  axis,
			color: animator,
		})
	}
	return labels
}

func vec3(v config.Vec3) geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}
