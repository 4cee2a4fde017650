package sandbox

import (
	"github.com/chewxy/math32"

	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/renderer"
)

// ShaderTriangle animates a color-interpolated triangle. The color pulse runs
// through a uniform; F3 additionally rewrites the top vertex color in place
// each frame, exercising partial updates of a dynamic buffer.
type ShaderTriangle struct {
	vbo         *renderer.Buffer
	time        float64
	animateData bool
}

func NewShaderTriangle() *ShaderTriangle {
	return &ShaderTriangle{}
}

func (s *ShaderTriangle) Name() string { return "shader_triangle" }

func (s *ShaderTriangle) Activate(ctx *RenderContext) error {
	if s.vbo != nil {
		return nil
	}

	vertices := []float32{
		-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
		0.0, 0.5, 0.0, 0.0, 0.0, 1.0, 1.0,
	}

	vbo, err := renderer.NewBuffer(ctx.Backend, renderer.Float32Bytes(vertices), coloredLayout(), renderer.UsageDynamic)
	if err != nil {
		return err
	}
	s.vbo = vbo

	core.LogInfo("F3 toggles vertex color animation")
	return nil
}

func (s *ShaderTriangle) Update(ctx *RenderContext, deltaTime float64) error {
	s.time += deltaTime

	if core.InputKeyPressed(core.KEY_F3) {
		s.animateData = !s.animateData
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_DRAWABLE_TOGGLED,
			Data: 0,
		})
	}

	if s.animateData {
		// Cycle the top vertex's color. The record is 28 bytes, the color of
		// the third vertex starts at byte 2*28+12.
		t := float32(s.time)
		color := []float32{
			0.5 + 0.5*math32.Sin(t),
			0.5 + 0.5*math32.Sin(t+2.1),
			0.5 + 0.5*math32.Sin(t+4.2),
			1.0,
		}
		stride := s.vbo.Layout().Stride()
		offset := 2*stride + 3*4
		if err := s.vbo.Update(offset, renderer.Float32Bytes(color)); err != nil {
			return err
		}
	}
	return nil
}

func (s *ShaderTriangle) Draw(ctx *RenderContext) error {
	shader, err := ctx.Shaders.Get(SHADER_COLORED_TRIANGLE)
	if err != nil {
		return err
	}
	shader.Use()
	shader.SetUniform1f("colorShift", math32.Sin(float32(s.time)*2.0))

	if err := s.vbo.Bind(); err != nil {
		return err
	}
	return ctx.Backend.Draw(renderer.ModeTriangles, 0, s.vbo.VertexCount())
}

func (s *ShaderTriangle) Deactivate(ctx *RenderContext) error {
	releaseBuffers(s.vbo)
	s.vbo = nil
	return nil
}
