package sandbox

import (
	"github.com/gpietz/go-gl-forge/engine/renderer"
)

// FirstTriangle is the smallest possible scene: three positions, one static
// buffer, a fixed-color shader.
type FirstTriangle struct {
	vbo *renderer.Buffer
}

func NewFirstTriangle() *FirstTriangle {
	return &FirstTriangle{}
}

func (s *FirstTriangle) Name() string { return "first_triangle" }

func (s *FirstTriangle) Activate(ctx *RenderContext) error {
	if s.vbo != nil {
		return nil
	}

	vertices := []float32{
		-0.5, -0.5, 0.0, // left
		0.5, -0.5, 0.0, // right
		0.0, 0.5, 0.0, // top
	}

	vbo, err := renderer.NewBuffer(ctx.Backend, renderer.Float32Bytes(vertices), positionLayout(), renderer.UsageStatic)
	if err != nil {
		return err
	}
	s.vbo = vbo
	return nil
}

func (s *FirstTriangle) Update(ctx *RenderContext, deltaTime float64) error {
	return nil
}

func (s *FirstTriangle) Draw(ctx *RenderContext) error {
	shader, err := ctx.Shaders.Get(SHADER_TRIANGLE)
	if err != nil {
		return err
	}
	shader.Use()

	if err := s.vbo.Bind(); err != nil {
		return err
	}
	return ctx.Backend.Draw(renderer.ModeTriangles, 0, s.vbo.VertexCount())
}

func (s *FirstTriangle) Deactivate(ctx *RenderContext) error {
	releaseBuffers(s.vbo)
	s.vbo = nil
	return nil
}
