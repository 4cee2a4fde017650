package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpietz/go-gl-forge/engine/assets/types"
)

const testShaderSource = `#version 410 core
layout (location = 0) in vec3 position;
void main() {
    gl_Position = vec4(position, 1.0);
}
`

const testFontDescriptor = `info face="Test" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1 outline=0
common lineHeight=36 base=29 scaleW=256 scaleH=128 pages=1 packed=0 alphaChnl=1 redChnl=0 greenChnl=0 blueChnl=0
page id=0 file="test_0.png"
chars count=2
char id=65 x=2 y=2 width=20 height=24 xoffset=0 yoffset=4 xadvance=21 page=0 chnl=15
char id=86 x=24 y=2 width=22 height=24 xoffset=-1 yoffset=4 xadvance=20 page=0 chnl=15
kernings count=1
kerning first=65 second=86 amount=-2
`

func writeTestAssets(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	shaderDir := filepath.Join(root, "shaders")
	require.NoError(t, os.MkdirAll(shaderDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(shaderDir, "basic.vert"), []byte(testShaderSource), 0o644))

	fontDir := filepath.Join(root, "fonts")
	require.NoError(t, os.MkdirAll(fontDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fontDir, "test.fnt"), []byte(testFontDescriptor), 0o644))

	textureDir := filepath.Join(root, "textures")
	require.NoError(t, os.MkdirAll(textureDir, 0o755))
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{B: 255, A: 255})
	f, err := os.Create(filepath.Join(textureDir, "checker.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	return root
}

func newTestManager(t *testing.T) *AssetManager {
	t.Helper()
	root := writeTestAssets(t)
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Initialize(root, false))
	t.Cleanup(func() { am.Shutdown() })
	return am
}

func TestLoadShaderSource(t *testing.T) {
	am := newTestManager(t)

	res, err := am.LoadAsset(filepath.Join("shaders", "basic.vert"), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)

	data, ok := res.Data.(*types.ShaderResourceData)
	require.True(t, ok)
	assert.Equal(t, testShaderSource, data.Source)
}

func TestLoadImageDecodesToRGBA(t *testing.T) {
	am := newTestManager(t)

	res, err := am.LoadAsset(filepath.Join("textures", "checker.png"), &types.ImageResourceParams{})
	require.NoError(t, err)

	data, ok := res.Data.(*types.ImageResourceData)
	require.True(t, ok)
	assert.Equal(t, uint32(2), data.Width)
	assert.Equal(t, uint32(2), data.Height)
	assert.Equal(t, uint8(4), data.ChannelCount)
	require.Len(t, data.Pixels, 16)
	// top-left pixel is red
	assert.Equal(t, uint8(255), data.Pixels[0])
	assert.Equal(t, uint8(255), data.Pixels[3])
}

func TestLoadImageFlipY(t *testing.T) {
	am := newTestManager(t)

	res, err := am.LoadAsset(filepath.Join("textures", "checker.png"), &types.ImageResourceParams{FlipY: true})
	require.NoError(t, err)

	data := res.Data.(*types.ImageResourceData)
	// the red pixel moved from row 0 to row 1
	assert.Equal(t, uint8(0), data.Pixels[0])
	assert.Equal(t, uint8(255), data.Pixels[8])
}

func TestLoadBitmapFontDescriptor(t *testing.T) {
	am := newTestManager(t)

	res, err := am.LoadAsset(filepath.Join("fonts", "test.fnt"), nil)
	require.NoError(t, err)

	data, ok := res.Data.(*types.BitmapFontResourceData)
	require.True(t, ok)
	assert.Equal(t, "Test", data.Face)
	assert.Equal(t, int32(36), data.LineHeight)
	assert.Equal(t, int32(256), data.AtlasSizeX)
	assert.Len(t, data.Glyphs, 2)
	assert.Len(t, data.Kernings, 1)
	require.Len(t, data.Pages, 1)
	assert.Equal(t, "test_0.png", data.Pages[0].File)
}

func TestLoadUnknownAssetFails(t *testing.T) {
	am := newTestManager(t)

	_, err := am.LoadAsset(filepath.Join("shaders", "missing.vert"), nil)
	assert.Error(t, err)
}

func TestDetermineAssetType(t *testing.T) {
	assert.Equal(t, types.ResourceTypeShader, determineAssetType("a/b.frag"))
	assert.Equal(t, types.ResourceTypeImage, determineAssetType("tex.jpeg"))
	assert.Equal(t, types.ResourceTypeBitmapFont, determineAssetType("font.fnt"))
	assert.Equal(t, types.ResourceTypeNone, determineAssetType("notes.txt"))
}
