package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Vec3 is a point in config files, written as [x, y, z]
type Vec3 [3]float64

// Config holds everything the viewer reads at startup and on hot reload
type Config struct {
	Window WindowConfig  `yaml:"window"`
	Camera CameraConfig  `yaml:"camera"`
	Cube   CubeConfig    `yaml:"cube"`
	Grid   GridConfig    `yaml:"grid"`
	Hover  HoverConfig   `yaml:"hover"`
	Labels []LabelConfig `yaml:"labels"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"`
}

type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	FovY     float64 `yaml:"fov_y"`
}

type CubeConfig struct {
	Size           float64 `yaml:"size"`
	Segments       int     `yaml:"segments"`
	Color          string  `yaml:"color"`
	OutlineColor   string  `yaml:"outline_color"`
	WireframeColor string  `yaml:"wireframe_color"`
	RollDurationMs int     `yaml:"roll_duration_ms"`
}

type GridConfig struct {
	Visible      bool    `yaml:"visible"`
	Extent       int     `yaml:"extent"`
	CellSize     float64 `yaml:"cell_size"`
	SectionSize  float64 `yaml:"section_size"`
	CellColor    string  `yaml:"cell_color"`
	SectionColor string  `yaml:"section_color"`
}

type HoverConfig struct {
	DurationMs int `yaml:"duration_ms"`
}

// LabelConfig describes one navigation axis
type LabelConfig struct {
	Text       string  `yaml:"text"`
	From       Vec3    `yaml:"from"`
	To         Vec3    `yaml:"to"`
	Color      string  `yaml:"color"`
	HoverColor string  `yaml:"hover_color"`
	Distance   float64 `yaml:"distance"`
	Offset     float64 `yaml:"offset"`
}

// Default returns the built-in scene: a 1-unit cube at the origin viewed
// from (5, 5, 5) with a narrow 20° lens and three navigation axes
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:      1400,
			Height:     900,
			Title:      "CubeCard",
			FPS:        60,
			Background: "#161616",
		},
		Camera: CameraConfig{
			Position: Vec3{5, 5, 5},
			Target:   Vec3{0, 0, 0},
			FovY:     20,
		},
		Cube: CubeConfig{
			Size:           1,
			Segments:       2,
			Color:          "#D7D7D7",
			OutlineColor:   "#3553ff",
			WireframeColor: "#161616",
			RollDurationMs: 300,
		},
		Grid: GridConfig{
			Visible:      true,
			Extent:       10,
			CellSize:     0.5,
			SectionSize:  1,
			CellColor:    "#6f6f6f",
			SectionColor: "#737373",
		},
		Hover: HoverConfig{DurationMs: 200},
		Labels: []LabelConfig{
			{Text: "ABOUT", From: Vec3{0, 0, 0}, To: Vec3{1, 0, 0}, Color: "#D7D7D7", Distance: 2, Offset: 16},
			{Text: "PROJECTS", From: Vec3{0, 0, 0}, To: Vec3{0, 1, 0}, Color: "#D7D7D7", Distance: 1.6, Offset: 16},
			{Text: "CONTACT", From: Vec3{0, 0, 0}, To: Vec3{0, 0, 1}, Color: "#D7D7D7", Distance: 2, Offset: 16},
		},
	}
}

// Load reads a YAML config on top of the defaults. An empty path returns the
// defaults. Fields missing from the file keep their default value; a labels
// list in the file replaces the default labels.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and colors
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.Window.FPS)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return fmt.Errorf("camera fov_y must be in (0, 180), got %v", c.Camera.FovY)
	}
	if c.Camera.Position == c.Camera.Target {
		return fmt.Errorf("camera position and target must differ")
	}
	if c.Cube.Size <= 0 {
		return fmt.Errorf("cube size must be positive, got %v", c.Cube.Size)
	}
	if c.Cube.Segments < 1 {
		return fmt.Errorf("cube segments must be at least 1, got %d", c.Cube.Segments)
	}
	if c.Cube.RollDurationMs < 0 || c.Hover.DurationMs < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.Grid.CellSize <= 0 || c.Grid.SectionSize <= 0 {
		return fmt.Errorf("grid cell and section sizes must be positive")
	}

	colors := map[string]string{
		"window.background":    c.Window.Background,
		"cube.color":           c.Cube.Color,
		"cube.outline_color":   c.Cube.OutlineColor,
		"cube.wireframe_color": c.Cube.WireframeColor,
		"grid.cell_color":      c.Grid.CellColor,
		"grid.section_color":   c.Grid.SectionColor,
	}
	for i, l := range c.Labels {
		if strings.TrimSpace(l.Text) == "" {
			return fmt.Errorf("labels[%d]: text is required", i)
		}
		colors[fmt.Sprintf("labels[%d].color", i)] = l.Color
		if l.HoverColor != "" {
			colors[fmt.Sprintf("labels[%d].hover_color", i)] = l.HoverColor
		}
	}
	for field, value := range colors {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

// RollDuration returns the roll duration
func (c Config) RollDuration() time.Duration {
	return time.Duration(c.Cube.RollDurationMs) * time.Millisecond
}

// HoverDuration returns the hover fade duration
func (c Config) HoverDuration() time.Duration {
	return time.Duration(c.Hover.DurationMs) * time.Millisecond
}

// ParseColor parses #rgb, #rrggbb or #rrggbbaa
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustColor parses a color already checked by Validate, falling back to magenta
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{R: 255, B: 255, A: 255}
	}
	return c
}
