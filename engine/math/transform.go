package math

// Transform composes a model matrix from translation, euler rotation and
// scale. Rotation angles are radians, applied in Z*Y*X order.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

func NewTransform() *Transform {
	return &Transform{
		Scale: NewVec3(1, 1, 1),
	}
}

func TransformFromPosition(position Vec3) *Transform {
	t := NewTransform()
	t.Position = position
	return t
}

// Matrix builds translation * rotation * scale, so scale applies first.
func (t *Transform) Matrix() Mat4 {
	m := NewMat4Translation(t.Position)
	m = m.Mul(NewMat4RotationZ(t.Rotation.Z))
	m = m.Mul(NewMat4RotationY(t.Rotation.Y))
	m = m.Mul(NewMat4RotationX(t.Rotation.X))
	m = m.Mul(NewMat4Scale(t.Scale))
	return m
}

// Rotate adds the given euler deltas (radians) to the current rotation.
func (t *Transform) Rotate(delta Vec3) {
	t.Rotation = t.Rotation.Add(delta)
}

// Translate moves the position by the given delta.
func (t *Transform) Translate(delta Vec3) {
	t.Position = t.Position.Add(delta)
}
