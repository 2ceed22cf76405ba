package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec returns v as an mgl32 vector.
func (v Vec3) Vec() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

func fromVec(v mgl32.Vec3) Vec3 { return Vec3{X: v[0], Y: v[1], Z: v[2]} }

// Compose builds translate(pos) * rotateX * rotateY * rotateZ * scale(scale) as a
// column-major matrix, the layout raylib uses. rotDeg is in degrees.
func Compose(pos, rotDeg, scale Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X, pos.Y, pos.Z).
		Mul4(mgl32.HomogRotate3DX(radians(rotDeg.X))).
		Mul4(mgl32.HomogRotate3DY(radians(rotDeg.Y))).
		Mul4(mgl32.HomogRotate3DZ(radians(rotDeg.Z))).
		Mul4(mgl32.Scale3D(scale.X, scale.Y, scale.Z))
}

// TransformPoint applies m to p with w = 1.
func TransformPoint(m mgl32.Mat4, p Vec3) Vec3 {
	return fromVec(m.Mul4x1(p.Vec().Vec4(1)).Vec3())
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
