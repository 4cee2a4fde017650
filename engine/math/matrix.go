package math

import "github.com/chewxy/math32"

// NewMat4Identity returns the identity matrix.
func NewMat4Identity() Mat4 {
	var m Mat4
	m.Data[0] = 1
	m.Data[5] = 1
	m.Data[10] = 1
	m.Data[15] = 1
	return m
}

// Mul returns m * o. Applied to a column vector, o's transform happens first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.Data[k*4+row] * o.Data[col*4+k]
			}
			out.Data[col*4+row] = sum
		}
	}
	return out
}

// MulVec4 transforms a vector by the matrix.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.Data[0]*v.X + m.Data[4]*v.Y + m.Data[8]*v.Z + m.Data[12]*v.W,
		Y: m.Data[1]*v.X + m.Data[5]*v.Y + m.Data[9]*v.Z + m.Data[13]*v.W,
		Z: m.Data[2]*v.X + m.Data[6]*v.Y + m.Data[10]*v.Z + m.Data[14]*v.W,
		W: m.Data[3]*v.X + m.Data[7]*v.Y + m.Data[11]*v.Z + m.Data[15]*v.W,
	}
}

// NewMat4Translation builds a translation matrix.
func NewMat4Translation(v Vec3) Mat4 {
	m := NewMat4Identity()
	m.Data[12] = v.X
	m.Data[13] = v.Y
	m.Data[14] = v.Z
	return m
}

// NewMat4Scale builds a scale matrix.
func NewMat4Scale(v Vec3) Mat4 {
	var m Mat4
	m.Data[0] = v.X
	m.Data[5] = v.Y
	m.Data[10] = v.Z
	m.Data[15] = 1
	return m
}

// NewMat4RotationX builds a rotation around the x axis, angle in radians.
func NewMat4RotationX(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	m := NewMat4Identity()
	m.Data[5] = c
	m.Data[6] = s
	m.Data[9] = -s
	m.Data[10] = c
	return m
}

// NewMat4RotationY builds a rotation around the y axis, angle in radians.
func NewMat4RotationY(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	m := NewMat4Identity()
	m.Data[0] = c
	m.Data[2] = -s
	m.Data[8] = s
	m.Data[10] = c
	return m
}

// NewMat4RotationZ builds a rotation around the z axis, angle in radians.
func NewMat4RotationZ(angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	m := NewMat4Identity()
	m.Data[0] = c
	m.Data[1] = s
	m.Data[4] = -s
	m.Data[5] = c
	return m
}

// NewMat4Perspective builds a right-handed perspective projection with a
// [-1, 1] clip-space depth range. fov is the vertical field of view in radians.
func NewMat4Perspective(fov, aspect, near, far float32) Mat4 {
	f := 1.0 / math32.Tan(fov*0.5)
	var m Mat4
	m.Data[0] = f / aspect
	m.Data[5] = f
	m.Data[10] = (far + near) / (near - far)
	m.Data[11] = -1
	m.Data[14] = (2 * far * near) / (near - far)
	return m
}

// NewMat4Orthographic builds an orthographic projection.
func NewMat4Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	m := NewMat4Identity()
	m.Data[0] = 2 / (right - left)
	m.Data[5] = 2 / (top - bottom)
	m.Data[10] = -2 / (far - near)
	m.Data[12] = -(right + left) / (right - left)
	m.Data[13] = -(top + bottom) / (top - bottom)
	m.Data[14] = -(far + near) / (far - near)
	return m
}

// NewMat4LookAt builds a view matrix looking from eye towards center.
func NewMat4LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f)

	var m Mat4
	m.Data[0] = s.X
	m.Data[4] = s.Y
	m.Data[8] = s.Z
	m.Data[1] = u.X
	m.Data[5] = u.Y
	m.Data[9] = u.Z
	m.Data[2] = -f.X
	m.Data[6] = -f.Y
	m.Data[10] = -f.Z
	m.Data[12] = -s.Dot(eye)
	m.Data[13] = -u.Dot(eye)
	m.Data[14] = f.Dot(eye)
	m.Data[15] = 1
	return m
}
