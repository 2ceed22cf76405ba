package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// View holds the 3D camera and the editor grid. The camera looks down -Z at the spawn
// origin; holding the right mouse button frees it for fly-through.
type View struct {
	Camera      rl.Camera3D
	GridVisible bool
	flying      bool
}

// NewView returns a perspective view aimed at the spawn origin.
func NewView() *View {
	v := &View{GridVisible: true}
	v.Camera.Position = rl.NewVector3(2, 3, 3)
	v.Camera.Target = rl.NewVector3(0, 0, -5)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 50
	v.Camera.Projection = rl.CameraPerspective
	return v
}

// Position is the camera position as an array, for shader uniforms.
func (v *View) Position() [3]float32 {
	p := v.Camera.Position
	return [3]float32{p.X, p.Y, p.Z}
}

// Update moves the camera while the right mouse button is held. The cursor is captured
// only for the duration of the drag.
func (v *View) Update() {
	down := rl.IsMouseButtonDown(rl.MouseButtonRight)
	switch {
	case down && !v.flying:
		rl.DisableCursor()
		v.flying = true
	case !down && v.flying:
		rl.EnableCursor()
		v.flying = false
	}
	if v.flying {
		rl.UpdateCamera(&v.Camera, rl.CameraFree)
	}
}

// Draw opens 3D mode, draws the grid and then calls draw for the scene objects.
func (v *View) Draw(draw func()) {
	rl.BeginMode3D(v.Camera)
	if v.GridVisible {
		drawGrid()
	}
	draw()
	rl.EndMode3D()
}

// drawGrid draws the XZ plane grid with major/minor lines and the three axes.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(i)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
