package sandbox

import (
	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/renderer"
)

type renderMode uint8

const (
	renderModeTriangle renderMode = iota
	renderModeQuad
	renderModeQuad2
)

func (m renderMode) next() renderMode {
	switch m {
	case renderModeTriangle:
		return renderModeQuad
	case renderModeQuad:
		return renderModeQuad2
	default:
		return renderModeTriangle
	}
}

func (m renderMode) String() string {
	switch m {
	case renderModeTriangle:
		return "Rendering triangle"
	case renderModeQuad:
		return "Rendering quad"
	default:
		return "Rendering quad with face overlay"
	}
}

// TextureTriangle cycles between a textured triangle, a textured quad and a
// multitextured quad. F3 toggles vertex color tinting, F4 advances the mode.
type TextureTriangle struct {
	vbo            *renderer.Buffer
	ibo            *renderer.Buffer
	useVertexColor bool
	mode           renderMode
}

func NewTextureTriangle() *TextureTriangle {
	return &TextureTriangle{}
}

func (s *TextureTriangle) Name() string { return "texture_triangle" }

func (s *TextureTriangle) Activate(ctx *RenderContext) error {
	if s.vbo == nil {
		if err := s.updateData(ctx); err != nil {
			return err
		}
		core.LogInfo("F3 toggles vertex coloring, F4 cycles the render mode")
	}

	// Warm the texture cache so mode switches do not hitch.
	for _, name := range []string{TEXTURE_CHECKERBOARD, TEXTURE_CRATE, TEXTURE_FACE} {
		if _, err := ctx.Textures.Get(name); err != nil {
			return err
		}
	}
	return nil
}

// updateData rebuilds the vertex and index buffers for the current mode.
func (s *TextureTriangle) updateData(ctx *RenderContext) error {
	var data *texturedVertexData
	if s.mode == renderModeTriangle {
		data = createTriangleData()
	} else {
		data = createQuadData()
	}

	releaseBuffers(s.vbo, s.ibo)
	vbo, ibo, err := data.createBuffers(ctx.Backend)
	if err != nil {
		return err
	}
	s.vbo, s.ibo = vbo, ibo

	core.LogInfo("%s", s.mode)
	return nil
}

func (s *TextureTriangle) Update(ctx *RenderContext, deltaTime float64) error {
	if core.InputKeyPressed(core.KEY_F3) {
		s.useVertexColor = !s.useVertexColor
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_DRAWABLE_TOGGLED,
			Data: 0,
		})
		if s.useVertexColor {
			core.LogInfo("Vertex coloring: ON")
		} else {
			core.LogInfo("Vertex coloring: OFF")
		}
	}
	if core.InputKeyPressed(core.KEY_F4) {
		s.mode = s.mode.next()
		return s.updateData(ctx)
	}
	return nil
}

func (s *TextureTriangle) bindTextures(ctx *RenderContext) error {
	switch s.mode {
	case renderModeTriangle:
		texture, err := ctx.Textures.Get(TEXTURE_CHECKERBOARD)
		if err != nil {
			return err
		}
		texture.Bind(0)
	case renderModeQuad:
		texture, err := ctx.Textures.Get(TEXTURE_CRATE)
		if err != nil {
			return err
		}
		texture.Bind(0)
	case renderModeQuad2:
		crate, err := ctx.Textures.Get(TEXTURE_CRATE)
		if err != nil {
			return err
		}
		face, err := ctx.Textures.Get(TEXTURE_FACE)
		if err != nil {
			return err
		}
		crate.Bind(0)
		face.Bind(1)
	}
	return nil
}

func (s *TextureTriangle) Draw(ctx *RenderContext) error {
	shader, err := ctx.Shaders.Get(SHADER_TEXTURED_TRIANGLE)
	if err != nil {
		return err
	}
	shader.Use()
	shader.SetUniform1i("texture1", 0)
	shader.SetUniform1i("texture2", 1)
	shader.SetUniform1i("useColor", boolToInt(s.useVertexColor))
	shader.SetUniform1i("useTexture2", boolToInt(s.mode == renderModeQuad2))

	if err := s.bindTextures(ctx); err != nil {
		return err
	}

	if err := s.vbo.Bind(); err != nil {
		return err
	}
	if err := s.ibo.Bind(); err != nil {
		return err
	}
	return ctx.Backend.DrawIndexed(renderer.ModeTriangles, s.ibo.IndexCount())
}

func (s *TextureTriangle) Deactivate(ctx *RenderContext) error {
	releaseBuffers(s.vbo, s.ibo)
	s.vbo, s.ibo = nil, nil
	return nil
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
