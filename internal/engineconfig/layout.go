package engineconfig

import (
	_ "embed"
	"fmt"
	"os"

	"scene-editor/internal/scene"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

//go:embed default_layout.yaml
var defaultLayout []byte

// TextureDef is one texture slot. Objects refer to slots by index.
type TextureDef struct {
	Path string `yaml:"path"`
	Flip bool   `yaml:"flip,omitempty"` // flip vertically after decoding
}

// ObjectDef is one seed object. Fields left out of the YAML are nil and filled from
// Layout.Defaults; a field written out, even as zero, overrides the default.
type ObjectDef struct {
	Type     string      `yaml:"type"`
	Texture  *int        `yaml:"texture,omitempty"`
	Position *[3]float32 `yaml:"position,omitempty"`
	Rotation *[3]float32 `yaml:"rotation,omitempty"` // degrees
	Scale    *[3]float32 `yaml:"scale,omitempty"`
}

// Layout is the scene loaded at startup: texture slots and the seed objects.
type Layout struct {
	Textures []TextureDef `yaml:"textures"`
	Defaults ObjectDef    `yaml:"defaults"`
	Objects  []ObjectDef  `yaml:"objects"`
}

// DefaultLayout returns the built-in layout: five cubes and a sphere in a row along X.
func DefaultLayout() (Layout, error) {
	return ParseLayout(defaultLayout)
}

// LoadLayout reads a layout file. An empty path returns DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: %w", err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes YAML layout data.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	if l.Defaults.Scale == nil {
		l.Defaults.Scale = &[3]float32{1, 1, 1}
	}
	return l, nil
}

// Resolve returns the objects with defaults applied.
func (l Layout) Resolve() ([]ObjectDef, error) {
	out := make([]ObjectDef, 0, len(l.Objects))
	for i, def := range l.Objects {
		// copier writes through existing pointers, so every object starts from its own deep copy of Defaults.
		var merged ObjectDef
		if err := copier.CopyWithOption(&merged, &l.Defaults, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if err := copier.CopyWithOption(&merged, &def, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		out = append(out, merged)
	}
	return out, nil
}

// Build creates the seed objects in file order.
func (l Layout) Build() ([]*scene.Object, error) {
	defs, err := l.Resolve()
	if err != nil {
		return nil, err
	}
	objs := make([]*scene.Object, 0, len(defs))
	for i, def := range defs {
		kind, err := scene.ParseKind(def.Type)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		tex := 0
		if def.Texture != nil {
			tex = *def.Texture
		}
		if len(l.Textures) > 0 && (tex < 0 || tex >= len(l.Textures)) {
			return nil, fmt.Errorf("object %d: texture %d out of range [0,%d)", i, tex, len(l.Textures))
		}
		objs = append(objs, scene.NewObject(kind, scene.Placement{
			Position: vecOf(def.Position),
			Rotation: vecOf(def.Rotation),
			Scale:    vecOf(def.Scale),
			Texture:  tex,
		}))
	}
	return objs, nil
}

func vecOf(a *[3]float32) scene.Vec3 {
	if a == nil {
		return scene.Vec3{}
	}
	return vec(*a)
}
