package hud

import (
	"fmt"
	"strings"

	"scene-editor/internal/editor"
	"scene-editor/internal/hotkeys"
	"scene-editor/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// maxLogLines is how many recent log lines sit in the bottom panel.
	maxLogLines = 8
	maxLineLen  = 160
	// updateInterval: FPS text is refreshed every N frames.
	updateInterval = 30
)

var (
	panelColor  = rl.NewColor(24, 24, 24, 200)
	statusColor = rl.NewColor(235, 235, 235, 255)
	legendColor = rl.NewColor(190, 190, 190, 255)
)

// Overlay draws the 2D layer on top of the scene: the status line and key legend at the
// top left, FPS at the top right and the most recent log lines at the bottom.
type Overlay struct {
	ShowFPS bool
	log     *logger.Logger
	legend  []string
	font    rl.Font

	frameCount  uint32
	lastFpsText string
}

// New returns an overlay showing log's recent lines and a legend of km's bindings.
func New(log *logger.Logger, km *hotkeys.Keymap, r *hotkeys.Router) *Overlay {
	return &Overlay{log: log, legend: hotkeys.Legend(km, r)}
}

// SetFont sets the overlay font. A zero texture ID keeps raylib's built-in font.
func (o *Overlay) SetFont(font rl.Font) {
	o.font = font
}

func (o *Overlay) text(s string, x, y, size int32, c rl.Color) {
	if o.font.Texture.ID != 0 {
		rl.DrawTextEx(o.font, s, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(s, x, y, size, c)
}

func (o *Overlay) measure(s string, size int32) int32 {
	if o.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(o.font, s, float32(size), 1).X)
	}
	return rl.MeasureText(s, size)
}

// Draw renders the overlay for the given editor status. Call after the 3D pass.
func (o *Overlay) Draw(status editor.Status) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	o.text(status.String(), padding, padding, fontSize, statusColor)
	y := int32(padding + lineHeight)
	for _, line := range chunk(o.legend, 4) {
		o.text(line, padding, y, fontSize-4, legendColor)
		y += lineHeight - 4
	}

	if o.ShowFPS {
		o.frameCount++
		if o.lastFpsText == "" || o.frameCount%updateInterval == 0 {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := o.measure(o.lastFpsText, fontSize)
		o.text(o.lastFpsText, screenW-w-padding, padding, fontSize, rl.Green)
	}

	lines := o.log.Tail(maxLogLines)
	if len(lines) == 0 {
		return
	}
	panelH := int32(len(lines)*lineHeight + padding)
	panelY := screenH - panelH
	rl.DrawRectangle(0, panelY, screenW, panelH, panelColor)
	for i, line := range lines {
		line = logger.Clip(line, maxLineLen)
		o.text(line, padding, panelY+int32(i*lineHeight)+padding/2, fontSize-2, rl.LightGray)
	}
}

func chunk(items []string, n int) []string {
	var out []string
	for i := 0; i < len(items); i += n {
		out = append(out, strings.Join(items[i:min(i+n, len(items))], "   "))
	}
	return out
}
