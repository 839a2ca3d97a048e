package app

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/cubecard/internal/anim"
	"github.com/philipparndt/cubecard/internal/config"
	"github.com/philipparndt/cubecard/internal/input"
	"github.com/philipparndt/cubecard/internal/orbit"
	"github.com/philipparndt/cubecard/internal/roll"
	"github.com/philipparndt/cubecard/pkg/cube"
	"github.com/philipparndt/cubecard/pkg/label"
	"github.com/philipparndt/cubecard/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	orbit  *orbit.Orbit
	camera rl.Camera3D
}

// CubeState holds the rolling cube and its render nodes
type CubeState struct {
	animator  *roll.Animator
	pivot     *roll.Node
	body      *roll.Node
	wireframe []cube.Segment
	size      float32
}

// LabelState holds one navigation axis and its per-frame results
type LabelState struct {
	id        string
	axis      label.Axis
	color     *anim.ColorAnimator
	placement label.Placement
	lineStart rl.Vector2 // Projected line endpoints, for hover hit-testing
	lineEnd   rl.Vector2
	textSize  rl.Vector2
}

// InputState holds input routing state
type InputState struct {
	bus                *input.Bus
	dispatcher         *input.Dispatcher
	hoveredTarget      string
	unsubscribePointer func()
	unsubscribeKeys    func()
}

// ReloadState holds config hot reload state
type ReloadState struct {
	configPath  string
	fileWatcher *watcher.FileWatcher
	mu          sync.Mutex
	pending     *config.Config // Loaded on the watcher goroutine, applied on the main thread
	reloadedAt  time.Time
	lastError   string
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	fontSize float32
}
