package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/cubecard/internal/config"
	"github.com/philipparndt/cubecard/pkg/watcher"
)

// configDebounce collapses editor save bursts into one reload
const configDebounce = 100 * time.Millisecond

// setupConfigWatcher starts watching the config file for changes
func (app *App) setupConfigWatcher() error {
	fw, err := watcher.NewFileWatcher(configDebounce, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Watch(app.Reload.configPath, app.onConfigChanged); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", app.Reload.configPath, err)
	}
	fw.Start()
	app.Reload.fileWatcher = fw
	app.logger.Printf("watching %s for changes", app.Reload.configPath)
	return nil
}

// onConfigChanged runs on the watcher goroutine. It only loads and parks the
// new config; the frame loop applies it.
func (app *App) onConfigChanged(path string) {
	cfg, err := config.Load(path)

	app.Reload.mu.Lock()
	defer app.Reload.mu.Unlock()
	if err != nil {
		app.logger.Printf("reload failed: %v", err)
		app.Reload.lastError = err.Error()
		return
	}
	app.Reload.pending = &cfg
}

// applyPendingConfig swaps in a reloaded config between frames. The cube
// keeps its grid cell and orientation.
func (app *App) applyPendingConfig(now time.Time) {
	app.Reload.mu.Lock()
	pending := app.Reload.pending
	app.Reload.pending = nil
	app.Reload.mu.Unlock()

	if pending == nil {
		return
	}
	app.applyConfig(*pending, now)

	app.Reload.mu.Lock()
	app.Reload.reloadedAt = now
	app.Reload.lastError = ""
	app.Reload.mu.Unlock()

	app.logger.Printf("config reloaded from %s", app.Reload.configPath)
}

// applyConfig updates the scene in place from cfg
func (app *App) applyConfig(cfg config.Config, now time.Time) {
	app.Config = cfg
	app.applyCubeConfig(cfg)
	app.Camera.orbit.FovY = cfg.Camera.FovY

	app.Labels = buildLabels(cfg, app.Labels, now)

	// Renamed labels get new ids; drop hover state that no longer has a target
	for i := range app.Labels {
		l := &app.Labels[i]
		if l.id == app.Input.hoveredTarget {
			return
		}
	}
	app.Input.hoveredTarget = ""
	for i := range app.Labels {
		if app.Labels[i].color.Hovered() {
			app.Labels[i].color.Leave(now)
		}
	}
}
