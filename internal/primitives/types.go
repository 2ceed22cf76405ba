package primitives

import (
	"scene-editor/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape describes the mesh generated for one object kind. Cubes span -1..1 on every
// axis; spheres have radius 1 with Rings x Slices bands.
type Shape struct {
	Size   [3]float32
	Radius float32
	Rings  int32
	Slices int32
	Color  rl.Color
}

// Shapes holds the mesh parameters for each kind.
var Shapes = map[scene.Kind]Shape{
	scene.Cube:   {Size: [3]float32{2, 2, 2}, Color: defaultPrimitiveColor},
	scene.Sphere: {Radius: 1, Rings: 20, Slices: 20, Color: defaultPrimitiveColor},
}

func (s Shape) mesh(kind scene.Kind) rl.Mesh {
	if kind == scene.Sphere {
		return rl.GenMeshSphere(s.Radius, int(s.Rings), int(s.Slices))
	}
	return rl.GenMeshCube(s.Size[0], s.Size[1], s.Size[2])
}
