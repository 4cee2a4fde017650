package sandbox

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/gpietz/go-gl-forge/engine/assets"
	"github.com/gpietz/go-gl-forge/engine/assets/types"
	"github.com/gpietz/go-gl-forge/engine/renderer/opengl"
)

// Texture names used by the scenes.
const (
	TEXTURE_CHECKERBOARD = "checkerboard"
	TEXTURE_CRATE        = "crate"
	TEXTURE_FACE         = "face"
)

type textureEntry struct {
	path    string
	opts    opengl.TextureOptions
	texture *opengl.Texture
}

// TextureManager loads texture assets on first use and caches them by name.
type TextureManager struct {
	assets   *assets.AssetManager
	textures map[string]*textureEntry
}

func NewTextureManager(am *assets.AssetManager) *TextureManager {
	tm := &TextureManager{
		assets:   am,
		textures: make(map[string]*textureEntry),
	}
	opts := opengl.TextureOptions{
		Filter:      opengl.FilterLinear,
		Wrap:        opengl.WrapRepeat,
		GenerateMip: true,
		FlipY:       true,
	}
	tm.Register(TEXTURE_CHECKERBOARD, filepath.Join("textures", "checkerboard.png"), opts)
	tm.Register(TEXTURE_CRATE, filepath.Join("textures", "crate.png"), opts)
	tm.Register(TEXTURE_FACE, filepath.Join("textures", "face.png"), opts)
	return tm
}

func (tm *TextureManager) Register(name, path string, opts opengl.TextureOptions) {
	tm.textures[name] = &textureEntry{path: path, opts: opts}
}

// Get returns the texture for the name, loading and uploading it on first use.
func (tm *TextureManager) Get(name string) (*opengl.Texture, error) {
	entry, ok := tm.textures[name]
	if !ok {
		return nil, fmt.Errorf("unknown texture %q", name)
	}
	if entry.texture == nil {
		img, err := tm.loadImage(entry.path)
		if err != nil {
			return nil, err
		}
		texture, err := opengl.NewTexture(img, entry.opts)
		if err != nil {
			return nil, err
		}
		entry.texture = texture
	}
	return entry.texture, nil
}

func (tm *TextureManager) loadImage(path string) (image.Image, error) {
	res, err := tm.assets.LoadAsset(path, &types.ImageResourceParams{})
	if err != nil {
		return nil, err
	}
	data, ok := res.Data.(*types.ImageResourceData)
	if !ok {
		return nil, fmt.Errorf("asset %s is not an image", path)
	}
	return &image.RGBA{
		Pix:    data.Pixels,
		Stride: 4 * int(data.Width),
		Rect:   image.Rect(0, 0, int(data.Width), int(data.Height)),
	}, nil
}

// newTextureFromResource uploads decoded image data without going through
// the named cache. Used for one-off textures like font atlas pages.
func newTextureFromResource(data *types.ImageResourceData, opts opengl.TextureOptions) (*opengl.Texture, error) {
	img := &image.RGBA{
		Pix:    data.Pixels,
		Stride: 4 * int(data.Width),
		Rect:   image.Rect(0, 0, int(data.Width), int(data.Height)),
	}
	return opengl.NewTexture(img, opts)
}

func (tm *TextureManager) Shutdown() {
	for _, entry := range tm.textures {
		if entry.texture != nil {
			entry.texture.Release()
			entry.texture = nil
		}
	}
}
