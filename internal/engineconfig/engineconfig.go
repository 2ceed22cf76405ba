package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"scene-editor/internal/hotkeys"
	"scene-editor/internal/logger"
	"scene-editor/internal/scene"

	"github.com/pelletier/go-toml/v2"
)

// PrefsPath is the default engine preferences file, relative to the process working directory.
const PrefsPath = "config/engine.toml"

// EnginePrefs holds window, frame and editing preferences. Persisted across runs;
// the scene itself is never saved.
type EnginePrefs struct {
	Width      int32      `toml:"width"`
	Height     int32      `toml:"height"`
	Title      string     `toml:"title"`
	Fullscreen bool       `toml:"fullscreen"`
	TargetFPS  int32      `toml:"target_fps"`
	ClearColor [3]float32 `toml:"clear_color"`

	ShowFPS     bool `toml:"show_fps"`
	GridVisible bool `toml:"grid_visible"`

	// Font names the overlay font under assets/fonts; empty picks any, none found uses the built-in font.
	Font string `toml:"font"`

	MoveStep     float32    `toml:"move_step"`
	RotateStep   float32    `toml:"rotate_step"`
	SpawnSpacing float32    `toml:"spawn_spacing"`
	SpawnOrigin  [3]float32 `toml:"spawn_origin"`
	HistoryDepth int        `toml:"history_depth"`

	LogFile string `toml:"log_file"`
}

// Default returns the stock preferences: a 1600x900 window at 60 FPS, half-unit moves
// and 5 degree turns, unbounded history.
func Default() EnginePrefs {
	return EnginePrefs{
		Width:        1600,
		Height:       900,
		Title:        "scene editor",
		TargetFPS:    60,
		ClearColor:   [3]float32{0.22, 0.16, 0.18},
		ShowFPS:      true,
		GridVisible:  true,
		MoveStep:     scene.DefaultMoveStep,
		RotateStep:   scene.DefaultRotateStep,
		SpawnSpacing: 2,
		SpawnOrigin:  [3]float32{0, 0, -5},
		LogFile:      logger.DefaultFilePath,
	}
}

// Load reads preferences from path. Keys missing from the file keep their defaults.
// A missing file is not an error and yields Default().
func Load(path string) (EnginePrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("engineconfig: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the frame loop or router cannot work with.
func (p EnginePrefs) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", p.Width, p.Height)
	case p.TargetFPS <= 0:
		return fmt.Errorf("target_fps %d must be positive", p.TargetFPS)
	case p.MoveStep <= 0:
		return fmt.Errorf("move_step %v must be positive", p.MoveStep)
	case p.RotateStep <= 0:
		return fmt.Errorf("rotate_step %v must be positive", p.RotateStep)
	case p.SpawnSpacing < 0:
		return fmt.Errorf("spawn_spacing %v must not be negative", p.SpawnSpacing)
	case p.HistoryDepth < 0:
		return fmt.Errorf("history_depth %d must not be negative", p.HistoryDepth)
	}
	return nil
}

// RouterOptions converts the editing preferences for the hotkey router.
func (p EnginePrefs) RouterOptions() hotkeys.Options {
	return hotkeys.Options{
		MoveStep:   p.MoveStep,
		RotateStep: p.RotateStep,
		Spacing:    p.SpawnSpacing,
		Origin:     vec(p.SpawnOrigin),
	}
}

func vec(a [3]float32) scene.Vec3 {
	return scene.V3(a[0], a[1], a[2])
}
