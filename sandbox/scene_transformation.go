package sandbox

import (
	"github.com/chewxy/math32"

	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/math"
	"github.com/gpietz/go-gl-forge/engine/renderer"
)

type transformOp uint8

const (
	transformRotate transformOp = iota
	transformScalePulse
	transformOrbit
)

func (op transformOp) next() transformOp {
	switch op {
	case transformRotate:
		return transformScalePulse
	case transformScalePulse:
		return transformOrbit
	default:
		return transformRotate
	}
}

func (op transformOp) String() string {
	switch op {
	case transformRotate:
		return "Rotation"
	case transformScalePulse:
		return "Scale pulse"
	default:
		return "Orbit"
	}
}

// Transformation drives a textured quad through a model matrix built from a
// Transform. F3 cycles between rotation, scale pulsing and orbiting.
type Transformation struct {
	vbo       *renderer.Buffer
	ibo       *renderer.Buffer
	transform *math.Transform
	op        transformOp
	time      float64
}

func NewTransformation() *Transformation {
	return &Transformation{
		transform: math.NewTransform(),
	}
}

func (s *Transformation) Name() string { return "transformation" }

func (s *Transformation) Activate(ctx *RenderContext) error {
	if s.vbo != nil {
		return nil
	}

	vbo, ibo, err := createQuadData().createBuffers(ctx.Backend)
	if err != nil {
		return err
	}
	s.vbo, s.ibo = vbo, ibo

	core.LogInfo("F3 cycles the transform mode")
	return nil
}

func (s *Transformation) Update(ctx *RenderContext, deltaTime float64) error {
	s.time += deltaTime

	if core.InputKeyPressed(core.KEY_F3) {
		s.op = s.op.next()
		s.transform = math.NewTransform()
		core.LogInfo("Transform mode: %s", s.op)
	}

	t := float32(s.time)
	switch s.op {
	case transformRotate:
		s.transform.Rotation = math.NewVec3(0, 0, t)
	case transformScalePulse:
		scale := 0.75 + 0.25*math32.Sin(t*2.0)
		s.transform.Scale = math.NewVec3(scale, scale, 1)
	case transformOrbit:
		s.transform.Position = math.NewVec3(0.5*math32.Cos(t), 0.5*math32.Sin(t), 0)
		s.transform.Scale = math.NewVec3(0.5, 0.5, 1)
		s.transform.Rotation = math.NewVec3(0, 0, t)
	}
	return nil
}

func (s *Transformation) Draw(ctx *RenderContext) error {
	shader, err := ctx.Shaders.Get(SHADER_TRANSFORM)
	if err != nil {
		return err
	}
	shader.Use()
	shader.SetUniform1i("texture1", 0)

	model := s.transform.Matrix()
	shader.SetUniformMatrix4("transform", &model)

	texture, err := ctx.Textures.Get(TEXTURE_CRATE)
	if err != nil {
		return err
	}
	texture.Bind(0)

	if err := s.vbo.Bind(); err != nil {
		return err
	}
	if err := s.ibo.Bind(); err != nil {
		return err
	}
	return ctx.Backend.DrawIndexed(renderer.ModeTriangles, s.ibo.IndexCount())
}

func (s *Transformation) Deactivate(ctx *RenderContext) error {
	releaseBuffers(s.vbo, s.ibo)
	s.vbo, s.ibo = nil, nil
	return nil
}
