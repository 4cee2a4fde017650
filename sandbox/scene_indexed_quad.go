package sandbox

import (
	"github.com/gpietz/go-gl-forge/engine/renderer"
)

// IndexedQuad renders a quad from four shared vertices and six indices.
type IndexedQuad struct {
	vbo *renderer.Buffer
	ibo *renderer.Buffer
}

func NewIndexedQuad() *IndexedQuad {
	return &IndexedQuad{}
}

func (s *IndexedQuad) Name() string { return "indexed_quad" }

func (s *IndexedQuad) Activate(ctx *RenderContext) error {
	if s.vbo != nil {
		return nil
	}

	// x, y, z, r, g, b, a per corner
	vertices := []float32{
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 1.0,
		-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 1.0,
	}
	indices := []uint32{0, 1, 3, 1, 2, 3}

	vbo, err := renderer.NewBuffer(ctx.Backend, renderer.Float32Bytes(vertices), coloredLayout(), renderer.UsageStatic)
	if err != nil {
		return err
	}
	ibo, err := renderer.NewIndexBuffer(ctx.Backend, indices, renderer.UsageStatic)
	if err != nil {
		vbo.Release()
		return err
	}
	s.vbo = vbo
	s.ibo = ibo
	return nil
}

func (s *IndexedQuad) Update(ctx *RenderContext, deltaTime float64) error {
	return nil
}

func (s *IndexedQuad) Draw(ctx *RenderContext) error {
	shader, err := ctx.Shaders.Get(SHADER_COLORED_TRIANGLE)
	if err != nil {
		return err
	}
	shader.Use()
	shader.SetUniform1f("colorShift", 1.0)

	// Vertex buffer first: the element binding is recorded into its VAO.
	if err := s.vbo.Bind(); err != nil {
		return err
	}
	if err := s.ibo.Bind(); err != nil {
		return err
	}
	return ctx.Backend.DrawIndexed(renderer.ModeTriangles, s.ibo.IndexCount())
}

func (s *IndexedQuad) Deactivate(ctx *RenderContext) error {
	releaseBuffers(s.vbo, s.ibo)
	s.vbo, s.ibo = nil, nil
	return nil
}
