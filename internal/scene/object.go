package scene

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a float32 triple used for position, rotation (degrees) and scale.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Kind names the shared geometry an object is drawn with.
type Kind int

const (
	Cube Kind = iota
	Sphere
)

// String returns the lowercase primitive name ("cube", "sphere").
func (k Kind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a primitive name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "cube":
		return Cube, nil
	case "sphere":
		return Sphere, nil
	}
	return 0, fmt.Errorf("unknown primitive type %q", s)
}

// Placement is the initial transform and texture slot of a new object.
// A zero Scale is treated as unit scale.
type Placement struct {
	Position Vec3
	Rotation Vec3 // degrees
	Scale    Vec3
	Texture  int
}

var nextID atomic.Uint64

// Object is one primitive in the scene. Its identity is the pointer: undo and redo
// move the same *Object in and out of the History, so later transform edits survive.
// The transform is only changed through Move and Rotate, which keep the model matrix current.
type Object struct {
	id      uint64
	kind    Kind
	texture int

	position Vec3
	rotation Vec3
	scale    Vec3
	model    mgl32.Mat4
}

// NewObject creates an object of the given kind with its model matrix already built.
func NewObject(kind Kind, p Placement) *Object {
	if p.Scale == (Vec3{}) {
		p.Scale = V3(1, 1, 1)
	}
	o := &Object{
		id:       nextID.Add(1),
		kind:     kind,
		texture:  p.Texture,
		position: p.Position,
		rotation: p.Rotation,
		scale:    p.Scale,
	}
	o.updateModel()
	return o
}

// ID is unique per process and only used for log names.
func (o *Object) ID() uint64 { return o.id }

// Kind is the primitive drawn for the object.
func (o *Object) Kind() Kind { return o.kind }

// Texture is the texture slot index.
func (o *Object) Texture() int { return o.texture }

// Position is the translation in world units.
func (o *Object) Position() Vec3 { return o.position }

// Rotation is the X, Y, Z Euler angles in degrees.
func (o *Object) Rotation() Vec3 { return o.rotation }

// Scale is the per-axis scale factor.
func (o *Object) Scale() Vec3 { return o.scale }

// Model returns the cached model matrix.
func (o *Object) Model() mgl32.Mat4 { return o.model }

// Name is the label used in log lines, e.g. "cube#7".
func (o *Object) Name() string {
	return fmt.Sprintf("%s#%d", o.kind, o.id)
}

func (o *Object) updateModel() {
	o.model = Compose(o.position, o.rotation, o.scale)
}

// State is a value copy of an object's inspectable fields.
type State struct {
	ID       uint64
	Kind     Kind
	Texture  int
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

func (o *Object) state() State {
	return State{
		ID:       o.id,
		Kind:     o.kind,
		Texture:  o.texture,
		Position: o.position,
		Rotation: o.rotation,
		Scale:    o.scale,
	}
}
