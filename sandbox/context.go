package sandbox

import (
	"github.com/gpietz/go-gl-forge/engine/assets"
	"github.com/gpietz/go-gl-forge/engine/renderer/opengl"
)

// RenderContext bundles everything a scene needs to draw. It is created once
// by the game after the GL context exists and passed to every scene call.
type RenderContext struct {
	Backend  *opengl.Backend
	Shaders  *ShaderManager
	Textures *TextureManager
	Assets   *assets.AssetManager

	Width  uint32
	Height uint32
}

// Aspect returns the framebuffer aspect ratio, guarding against a minimized
// window.
func (ctx *RenderContext) Aspect() float32 {
	if ctx.Height == 0 {
		return 1
	}
	return float32(ctx.Width) / float32(ctx.Height)
}
