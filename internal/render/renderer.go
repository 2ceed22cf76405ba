package render

import (
	"fmt"

	"scene-editor/internal/logger"
	"scene-editor/internal/primitives"
	"scene-editor/internal/scene"
	"scene-editor/internal/textures"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws scene objects through the primitive registry. Texture slots whose
// file failed to decode stay empty and those objects are drawn untextured.
type Renderer struct {
	view     *View
	reg      *primitives.Registry
	textures []*rl.Texture2D
	lightDir [3]float32
}

// NewRenderer returns a renderer drawing from view's camera.
func NewRenderer(view *View) *Renderer {
	return &Renderer{
		view:     view,
		reg:      primitives.NewRegistry(),
		lightDir: [3]float32{0.45, 0.75, 0.5},
	}
}

// Upload moves decoded images to the GPU. It must run after the window is open.
func (r *Renderer) Upload(decoded []textures.Decoded, log *logger.Logger) {
	r.textures = make([]*rl.Texture2D, len(decoded))
	for _, d := range decoded {
		if d.Err != nil {
			log.Error(fmt.Sprintf("texture slot %d", d.Slot), d.Err)
			continue
		}
		img := rl.NewImageFromImage(d.Img)
		tex := rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		if !rl.IsTextureValid(tex) {
			log.Logf("texture slot %d: upload failed for %s", d.Slot, d.Path)
			continue
		}
		rl.GenTextureMipmaps(&tex)
		rl.SetTextureFilter(tex, rl.FilterTrilinear)
		r.textures[d.Slot] = &tex
		log.Logf("Loaded texture %d: %s (%dx%d)", d.Slot, d.Path, tex.Width, tex.Height)
	}
}

// Draw renders the grid in 3D mode, then calls objects to draw the scene through r.
func (r *Renderer) Draw(objects func(*Renderer)) {
	r.reg.SetView(r.view.Position(), r.lightDir)
	r.view.Draw(func() { objects(r) })
}

// DrawObject draws o with its current model matrix.
func (r *Renderer) DrawObject(o *scene.Object) {
	r.reg.Draw(o.Kind(), Matrix(o.Model()), r.texture(o.Texture()))
}

func (r *Renderer) texture(slot int) *rl.Texture2D {
	if slot < 0 || slot >= len(r.textures) {
		return nil
	}
	return r.textures[slot]
}

// Unload frees GPU textures and meshes.
func (r *Renderer) Unload() {
	for i, tex := range r.textures {
		if tex != nil {
			rl.UnloadTexture(*tex)
			r.textures[i] = nil
		}
	}
	r.reg.Unload()
}

// Matrix converts a column-major mgl32 matrix to raylib's layout, which is also
// column-major: M0..M3 is the first column.
func Matrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
