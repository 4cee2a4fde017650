package sandbox

import (
	"fmt"
	"path/filepath"

	"github.com/gpietz/go-gl-forge/engine/assets/types"
	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/math"
	"github.com/gpietz/go-gl-forge/engine/renderer"
	"github.com/gpietz/go-gl-forge/engine/renderer/opengl"
	"github.com/gpietz/go-gl-forge/engine/renderer/vertex"
	"github.com/gpietz/go-gl-forge/engine/text"
)

// TextOverlay renders a live FPS readout with the bitmap font. The glyph
// quads are rebuilt whenever the text changes and streamed into dynamic
// buffers, so a longer line grows the buffers in place.
type TextOverlay struct {
	builder *text.Builder
	atlas   *opengl.Texture

	vbo *renderer.Buffer
	ibo *renderer.Buffer

	indexCount int
	sinceStats float64
	lastText   string
}

func NewTextOverlay() *TextOverlay {
	return &TextOverlay{}
}

func (s *TextOverlay) Name() string { return "text_overlay" }

func textLayout() *vertex.Layout {
	layout := vertex.NewLayout()
	layout.AddAttribute(0, 2, vertex.Float32, false)
	layout.AddAttribute(1, 2, vertex.Float32, false)
	return layout
}

func (s *TextOverlay) Activate(ctx *RenderContext) error {
	if s.builder == nil {
		fontRes, err := ctx.Assets.LoadAsset(filepath.Join("fonts", "forge_mono.fnt"), nil)
		if err != nil {
			return err
		}
		fontData, ok := fontRes.Data.(*types.BitmapFontResourceData)
		if !ok {
			return fmt.Errorf("font descriptor has unexpected payload")
		}
		s.builder = text.NewBuilder(fontData)

		if len(fontData.Pages) == 0 {
			return fmt.Errorf("font %q names no atlas page", fontData.Face)
		}
		atlasRes, err := ctx.Assets.LoadAsset(filepath.Join("fonts", fontData.Pages[0].File), &types.ImageResourceParams{})
		if err != nil {
			return err
		}
		imgData := atlasRes.Data.(*types.ImageResourceData)
		atlas, err := newTextureFromResource(imgData, opengl.TextureOptions{
			Filter: opengl.FilterNearest,
			Wrap:   opengl.WrapClampToEdge,
		})
		if err != nil {
			return err
		}
		s.atlas = atlas
	}

	ctx.Backend.EnableBlend()
	return s.setText(ctx, s.overlayText())
}

func (s *TextOverlay) overlayText() string {
	fps, frameTime := core.MetricsFrame()
	return fmt.Sprintf("GL FORGE SANDBOX\nFPS: %.1f (%.2f MS)", fps, frameTime)
}

// setText rebuilds the glyph mesh and pushes it into the buffers, creating
// them on first use.
func (s *TextOverlay) setText(ctx *RenderContext, content string) error {
	if content == s.lastText && s.vbo != nil {
		return nil
	}
	s.lastText = content

	mesh := s.builder.Build(content)
	s.indexCount = len(mesh.Indices)

	if s.vbo == nil {
		vbo, err := renderer.NewBuffer(ctx.Backend, renderer.Float32Bytes(mesh.Vertices), textLayout(), renderer.UsageStream)
		if err != nil {
			return err
		}
		ibo, err := renderer.NewIndexBuffer(ctx.Backend, mesh.Indices, renderer.UsageStream)
		if err != nil {
			vbo.Release()
			return err
		}
		s.vbo, s.ibo = vbo, ibo
		return nil
	}

	if err := s.vbo.Update(0, renderer.Float32Bytes(mesh.Vertices)); err != nil {
		return err
	}
	return s.ibo.Update(0, renderer.Uint32Bytes(mesh.Indices))
}

func (s *TextOverlay) Update(ctx *RenderContext, deltaTime float64) error {
	s.sinceStats += deltaTime
	if s.sinceStats < 0.25 {
		return nil
	}
	s.sinceStats = 0
	return s.setText(ctx, s.overlayText())
}

func (s *TextOverlay) Draw(ctx *RenderContext) error {
	if s.indexCount == 0 {
		return nil
	}

	shader, err := ctx.Shaders.Get(SHADER_TEXT)
	if err != nil {
		return err
	}
	shader.Use()
	shader.SetUniform1i("fontAtlas", 0)
	shader.SetUniform4f("textColor", math.NewVec4(1.0, 0.85, 0.3, 1.0))

	// Pixel coordinates with the origin at the top-left, like the builder.
	ortho := math.NewMat4Orthographic(0, float32(ctx.Width), float32(ctx.Height), 0, -1, 1)
	// Nudge the block away from the corner.
	offset := math.NewMat4Translation(math.NewVec3(20, 20, 0))
	matrix := ortho.Mul(offset)
	shader.SetUniformMatrix4("ortho_matrix", &matrix)

	s.atlas.Bind(0)

	if err := s.vbo.Bind(); err != nil {
		return err
	}
	if err := s.ibo.Bind(); err != nil {
		return err
	}
	return ctx.Backend.DrawIndexed(renderer.ModeTriangles, s.indexCount)
}

func (s *TextOverlay) Deactivate(ctx *RenderContext) error {
	releaseBuffers(s.vbo, s.ibo)
	s.vbo, s.ibo = nil, nil
	s.indexCount = 0
	s.lastText = ""
	if s.atlas != nil {
		s.atlas.Release()
		s.atlas = nil
	}
	s.builder = nil
	return nil
}
