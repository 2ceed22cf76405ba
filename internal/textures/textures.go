package textures

import (
	"fmt"
	"image"

	"scene-editor/internal/engineconfig"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Decoded is one texture slot after decoding. Img is nil when the file could not
// be read; Err says why, and the slot is drawn untextured.
type Decoded struct {
	Slot int
	Path string
	Img  image.Image
	Err  error
}

// Decode reads the image at path and flips it vertically when flip is set.
func Decode(path string, flip bool) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	if flip {
		return transform.FlipV(img), nil
	}
	return img, nil
}

// DecodeAll decodes every slot in order. Failures are reported per slot rather than
// aborting, so one missing file does not lose the others.
func DecodeAll(defs []engineconfig.TextureDef) []Decoded {
	out := make([]Decoded, len(defs))
	for i, def := range defs {
		img, err := Decode(def.Path, def.Flip)
		out[i] = Decoded{Slot: i, Path: def.Path, Img: img, Err: err}
	}
	return out
}
