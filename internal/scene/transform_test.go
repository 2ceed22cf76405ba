package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertMat(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "element %d", i)
	}
}

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Vec3
	}{
		{Left, V3(0.5, 2, 3)},
		{Right, V3(1.5, 2, 3)},
		{Up, V3(1, 2.5, 3)},
		{Down, V3(1, 1.5, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			o := NewObject(Cube, Placement{Position: V3(1, 2, 3), Rotation: V3(10, 20, 30)})
			Move(o, tt.dir, DefaultMoveStep)
			assert.Equal(t, tt.want, o.Position())
			assert.Equal(t, V3(10, 20, 30), o.Rotation())
			assertMat(t, Compose(tt.want, V3(10, 20, 30), V3(1, 1, 1)), o.Model())
		})
	}
}

func TestRotate(t *testing.T) {
	o := NewObject(Cube, Placement{Position: V3(1, 0, 0), Rotation: V3(45, 0, -45)})
	old := o.Model()

	Rotate(o, Clockwise, DefaultRotateStep)
	assert.Equal(t, V3(45, 5, -45), o.Rotation())
	assert.Equal(t, V3(1, 0, 0), o.Position())
	assertMat(t, Compose(V3(1, 0, 0), V3(45, 5, -45), V3(1, 1, 1)), o.Model())
	assert.NotEqual(t, old, o.Model())

	Rotate(o, CounterClockwise, DefaultRotateStep)
	Rotate(o, CounterClockwise, DefaultRotateStep)
	assert.Equal(t, V3(45, -5, -45), o.Rotation())
}

func TestComposeOrder(t *testing.T) {
	// scale first, then rotate about Y, then translate
	m := Compose(V3(10, 0, 0), V3(0, 90, 0), V3(2, 2, 2))
	assertVec(t, V3(10, 0, -2), TransformPoint(m, V3(1, 0, 0)))

	m = Compose(V3(0, 0, 0), V3(90, 0, 0), V3(1, 1, 1))
	assertVec(t, V3(0, 0, 1), TransformPoint(m, V3(0, 1, 0)))

	m = Compose(V3(0, 0, 0), V3(0, 0, 90), V3(1, 1, 1))
	assertVec(t, V3(0, 1, 0), TransformPoint(m, V3(1, 0, 0)))

	// X is applied after Y: rotY(90) sends +X to -Z, then rotX(90) sends -Z to +Y
	m = Compose(V3(0, 0, 0), V3(90, 90, 0), V3(1, 1, 1))
	assertVec(t, V3(0, 1, 0), TransformPoint(m, V3(1, 0, 0)))
}

func TestComposeTranslationAndScale(t *testing.T) {
	m := Compose(V3(1, 2, 3), V3(0, 0, 0), V3(2, 3, 4))
	want := mgl32.Ident4()
	want[0], want[5], want[10] = 2, 3, 4
	want[12], want[13], want[14] = 1, 2, 3
	assertMat(t, want, m)
}

func TestNewObjectDefaultsScale(t *testing.T) {
	o := NewObject(Sphere, Placement{})
	assert.Equal(t, V3(1, 1, 1), o.Scale())
	assertMat(t, mgl32.Ident4(), o.Model())
}

func TestLastOnEmptyScene(t *testing.T) {
	h := NewHistory()
	_, err := MoveLast(h, Left, DefaultMoveStep)
	require.ErrorIs(t, err, ErrEmptyScene)
	_, err = RotateLast(h, Clockwise, DefaultRotateStep)
	require.ErrorIs(t, err, ErrEmptyScene)
}

func TestLastTargetsMostRecent(t *testing.T) {
	a := NewObject(Cube, Placement{})
	b := NewObject(Sphere, Placement{})
	h := NewHistory(a, b)

	o, err := RotateLast(h, CounterClockwise, DefaultRotateStep)
	require.NoError(t, err)
	assert.Same(t, b, o)
	assert.Equal(t, float32(-5), b.Rotation().Y)
	assert.Equal(t, float32(0), a.Rotation().Y)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("sphere")
	require.NoError(t, err)
	assert.Equal(t, Sphere, k)
	_, err = ParseKind("torus")
	assert.Error(t, err)
}

func TestComposeMatchesManualProduct(t *testing.T) {
	pos, rot, scale := V3(1, -2, 3), V3(30, -60, 15), V3(1, 2, 0.5)
	m := Compose(pos, rot, scale)

	p := V3(0.25, 1, -1)
	want := p
	want = V3(want.X*scale.X, want.Y*scale.Y, want.Z*scale.Z)
	want = TransformPoint(mgl32.HomogRotate3DZ(mgl32.DegToRad(rot.Z)), want)
	want = TransformPoint(mgl32.HomogRotate3DY(mgl32.DegToRad(rot.Y)), want)
	want = TransformPoint(mgl32.HomogRotate3DX(mgl32.DegToRad(rot.X)), want)
	want = want.Add(pos)
	assertVec(t, want, TransformPoint(m, p))

	assert.Equal(t, pos, fromVec(m.Col(3).Vec3()))
}
