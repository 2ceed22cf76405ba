package render

import (
	"scene-editor/internal/engineconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hooks are the per-phase callbacks of the frame loop. Setup runs once after the
// window opens and Teardown once before it closes; both may be nil.
type Hooks struct {
	Setup    func()
	Update   func() (quit bool)
	Draw     func()
	Teardown func()
}

// Run opens the window described by prefs and drives the frame loop. Each frame it
// calls Update, then clears to the configured color and calls Draw. The loop ends when
// Update returns true or the window is closed. Escape is left to Update, not raylib.
func Run(prefs engineconfig.EnginePrefs, h Hooks) {
	if prefs.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
	} else {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(prefs.Width, prefs.Height, prefs.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(prefs.TargetFPS)
	bg := ClearColor(prefs.ClearColor)

	if h.Setup != nil {
		h.Setup()
	}
	if h.Teardown != nil {
		defer h.Teardown()
	}
	for !rl.WindowShouldClose() {
		if h.Update() {
			return
		}
		rl.BeginDrawing()
		rl.ClearBackground(bg)
		h.Draw()
		rl.EndDrawing()
	}
}

// ClearColor converts a normalized RGB triple to an opaque raylib color.
func ClearColor(c [3]float32) rl.Color {
	return rl.NewColor(unit(c[0]), unit(c[1]), unit(c[2]), 255)
}

func unit(f float32) uint8 {
	return uint8(min(max(f, 0), 1)*255 + 0.5)
}
