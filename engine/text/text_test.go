package text

import (
	"strings"
	"testing"

	"github.com/fzipp/bmfont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpietz/go-gl-forge/engine/assets/types"
)

const descriptorText = `info face="Fixture" size=32 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=1 aa=1 padding=0,0,0,0 spacing=1,1 outline=0
common lineHeight=40 base=30 scaleW=128 scaleH=64 pages=1 packed=0 alphaChnl=1 redChnl=0 greenChnl=0 blueChnl=0
page id=0 file="fixture_0.png"
chars count=4
char id=65 x=0 y=0 width=16 height=20 xoffset=1 yoffset=2 xadvance=18 page=0 chnl=15
char id=86 x=16 y=0 width=16 height=20 xoffset=0 yoffset=2 xadvance=17 page=0 chnl=15
char id=32 x=0 y=0 width=0 height=0 xoffset=0 yoffset=0 xadvance=10 page=0 chnl=15
char id=63 x=32 y=0 width=14 height=20 xoffset=0 yoffset=2 xadvance=15 page=0 chnl=15
kernings count=1
kerning first=65 second=86 amount=-3
`

func fixtureFont(t *testing.T) *types.BitmapFontResourceData {
	t.Helper()
	desc, err := bmfont.ReadDescriptor(strings.NewReader(descriptorText))
	require.NoError(t, err)

	font := &types.BitmapFontResourceData{
		Face:       desc.Info.Face,
		LineHeight: int32(desc.Common.LineHeight),
		Baseline:   int32(desc.Common.Base),
		AtlasSizeX: int32(desc.Common.ScaleW),
		AtlasSizeY: int32(desc.Common.ScaleH),
	}
	for _, g := range desc.Chars {
		font.Glyphs = append(font.Glyphs, types.FontGlyph{
			Codepoint: g.ID,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
		})
	}
	for p, k := range desc.Kerning {
		font.Kernings = append(font.Kernings, types.FontKerning{
			Codepoint0: p.First,
			Codepoint1: p.Second,
			Amount:     int16(k.Amount),
		})
	}
	return font
}

func TestBuildSingleGlyph(t *testing.T) {
	b := NewBuilder(fixtureFont(t))
	mesh := b.Build("A")

	require.Len(t, mesh.Vertices, 4*FloatsPerVertex)
	require.Len(t, mesh.Indices, 6)

	// First vertex is the quad's top-left: pen + offsets.
	assert.InDelta(t, 1.0, mesh.Vertices[0], 1e-6)
	assert.InDelta(t, 2.0, mesh.Vertices[1], 1e-6)
	// uv of the top-left corner.
	assert.InDelta(t, 0.0, mesh.Vertices[2], 1e-6)
	assert.InDelta(t, 0.0, mesh.Vertices[3], 1e-6)

	assert.InDelta(t, 18.0, mesh.Width, 1e-6)
	assert.InDelta(t, 40.0, mesh.Height, 1e-6)
}

func TestBuildAppliesKerning(t *testing.T) {
	b := NewBuilder(fixtureFont(t))
	mesh := b.Build("AV")

	// Second quad starts at advance(A) + kerning(A,V) + xoffset(V).
	secondQuad := mesh.Vertices[4*FloatsPerVertex:]
	assert.InDelta(t, 18.0-3.0, secondQuad[0], 1e-6)

	assert.InDelta(t, 18.0-3.0+17.0, mesh.Width, 1e-6)
	assert.InDelta(t, mesh.Width, b.Measure("AV"), 1e-6)
}

func TestWhitespaceAdvancesWithoutGeometry(t *testing.T) {
	b := NewBuilder(fixtureFont(t))
	mesh := b.Build("A A")

	// Two visible quads, the space only moves the pen.
	assert.Len(t, mesh.Vertices, 2*4*FloatsPerVertex)
	assert.InDelta(t, 18.0+10.0+18.0, mesh.Width, 1e-6)
}

func TestNewlineStartsNewLine(t *testing.T) {
	b := NewBuilder(fixtureFont(t))
	mesh := b.Build("A\nA")

	require.Len(t, mesh.Vertices, 2*4*FloatsPerVertex)
	// Second line's quad sits one line height lower.
	secondQuad := mesh.Vertices[4*FloatsPerVertex:]
	assert.InDelta(t, 2.0+40.0, secondQuad[1], 1e-6)
	assert.InDelta(t, 80.0, mesh.Height, 1e-6)
}

func TestMissingGlyphFallsBack(t *testing.T) {
	b := NewBuilder(fixtureFont(t))
	mesh := b.Build("ä")

	// The umlaut is not in the fixture font, the '?' quad stands in.
	require.Len(t, mesh.Vertices, 4*FloatsPerVertex)
	assert.InDelta(t, 15.0, mesh.Width, 1e-6)
}

func TestIndicesShareQuadVertices(t *testing.T) {
	b := NewBuilder(fixtureFont(t))
	mesh := b.Build("AV")

	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}, mesh.Indices)
}
