package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func assertVec4Near(t *testing.T, expected, actual Vec4) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, epsilon)
	assert.InDelta(t, expected.Y, actual.Y, epsilon)
	assert.InDelta(t, expected.Z, actual.Z, epsilon)
	assert.InDelta(t, expected.W, actual.W, epsilon)
}

func TestIdentityLeavesVectorUnchanged(t *testing.T) {
	v := NewVec4(1, 2, 3, 1)
	assertVec4Near(t, v, NewMat4Identity().MulVec4(v))
}

func TestTranslationMovesPoint(t *testing.T) {
	m := NewMat4Translation(NewVec3(10, -5, 2))
	out := m.MulVec4(NewVec4(1, 1, 1, 1))
	assertVec4Near(t, NewVec4(11, -4, 3, 1), out)

	// Directions (w=0) are unaffected by translation.
	dir := m.MulVec4(NewVec4(1, 0, 0, 0))
	assertVec4Near(t, NewVec4(1, 0, 0, 0), dir)
}

func TestRotationZQuarterTurn(t *testing.T) {
	m := NewMat4RotationZ(DegToRad(90))
	out := m.MulVec4(NewVec4(1, 0, 0, 1))
	assertVec4Near(t, NewVec4(0, 1, 0, 1), out)
}

func TestComposeTranslateRotateScale(t *testing.T) {
	tr := NewTransform()
	tr.Position = NewVec3(5, 0, 0)
	tr.Rotation = NewVec3(0, 0, DegToRad(90))
	tr.Scale = NewVec3(2, 2, 2)

	// Scale first: (1,0,0)->(2,0,0); rotate: ->(0,2,0); translate: ->(5,2,0).
	out := tr.Matrix().MulVec4(NewVec4(1, 0, 0, 1))
	assertVec4Near(t, NewVec4(5, 2, 0, 1), out)
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := NewMat4Perspective(DegToRad(45), 16.0/9.0, 0.1, 100)

	near := m.MulVec4(NewVec4(0, 0, -0.1, 1))
	assert.InDelta(t, -1.0, near.Z/near.W, epsilon, "near plane maps to -1")

	far := m.MulVec4(NewVec4(0, 0, -100, 1))
	assert.InDelta(t, 1.0, far.Z/far.W, epsilon, "far plane maps to +1")
}

func TestOrthographicMapsCorners(t *testing.T) {
	m := NewMat4Orthographic(0, 800, 0, 600, -1, 1)

	bl := m.MulVec4(NewVec4(0, 0, 0, 1))
	assertVec4Near(t, NewVec4(-1, -1, 0, 1), bl)

	tr := m.MulVec4(NewVec4(800, 600, 0, 1))
	assertVec4Near(t, NewVec4(1, 1, 0, 1), tr)
}

func TestLookAtOrigin(t *testing.T) {
	m := NewMat4LookAt(NewVec3(0, 0, 5), NewVec3(0, 0, 0), NewVec3(0, 1, 0))

	// The look target ends up in front of the camera on -z.
	out := m.MulVec4(NewVec4(0, 0, 0, 1))
	assertVec4Near(t, NewVec4(0, 0, -5, 1), out)
}

func TestClampAndRangeConvert(t *testing.T) {
	assert.Equal(t, 5, Clamp(10, 0, 5))
	assert.Equal(t, 0, Clamp(-1, 0, 5))
	assert.Equal(t, 3, Clamp(3, 0, 5))

	assert.InDelta(t, 0.0, RangeConvertFloat32(400, 0, 800, -1, 1), epsilon)
	assert.InDelta(t, 1.0, RangeConvertFloat32(800, 0, 800, -1, 1), epsilon)
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	assert.InDelta(t, 1.0, float64(v.Length()), epsilon)
	assert.InDelta(t, 0.6, float64(v.X), epsilon)
	assert.InDelta(t, 0.8, float64(v.Y), epsilon)

	zero := Vec3{}.Normalize()
	assert.Equal(t, Vec3{}, zero)
}
