package text

import (
	"github.com/gpietz/go-gl-forge/engine/assets/types"
	"github.com/gpietz/go-gl-forge/engine/core"
)

// Vertex layout of the generated mesh: two floats position, two floats
// texture coordinate, interleaved.
const FloatsPerVertex = 4

// Mesh is CPU-side geometry for a run of text, one quad per visible glyph.
// Vertices are interleaved x, y, u, v; indices describe two CCW triangles
// per quad.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	// Width is the pen advance of the whole run in pixels.
	Width float32
	// Height is the number of lines times the font line height.
	Height float32
}

// Builder lays out glyph quads for a bitmap font. Positions are in pixels
// with the origin at the top-left of the first line, y growing downwards;
// project with an orthographic matrix to get them on screen.
type Builder struct {
	font     *types.BitmapFontResourceData
	glyphs   map[rune]types.FontGlyph
	kernings map[[2]rune]int16
	fallback rune
}

func NewBuilder(font *types.BitmapFontResourceData) *Builder {
	b := &Builder{
		font:     font,
		glyphs:   make(map[rune]types.FontGlyph, len(font.Glyphs)),
		kernings: make(map[[2]rune]int16, len(font.Kernings)),
		fallback: '?',
	}
	for _, g := range font.Glyphs {
		b.glyphs[g.Codepoint] = g
	}
	for _, k := range font.Kernings {
		b.kernings[[2]rune{k.Codepoint0, k.Codepoint1}] = k.Amount
	}
	return b
}

// LineHeight returns the vertical advance between lines in pixels.
func (b *Builder) LineHeight() float32 {
	return float32(b.font.LineHeight)
}

// Measure returns the pixel width of a single line of text without
// building geometry.
func (b *Builder) Measure(text string) float32 {
	var penX float32
	var prev rune = -1
	for _, r := range text {
		if r == '\n' {
			prev = -1
			continue
		}
		g, ok := b.glyph(r)
		if !ok {
			continue
		}
		penX += b.kerning(prev, r)
		penX += float32(g.XAdvance)
		prev = r
	}
	return penX
}

// Build generates one quad per visible glyph. Whitespace advances the pen
// without emitting geometry, '\n' starts a new line.
func (b *Builder) Build(text string) *Mesh {
	mesh := &Mesh{}
	var penX, penY float32
	var maxX float32
	lines := 1
	var prev rune = -1

	for _, r := range text {
		if r == '\n' {
			if penX > maxX {
				maxX = penX
			}
			penX = 0
			penY += float32(b.font.LineHeight)
			lines++
			prev = -1
			continue
		}

		g, ok := b.glyph(r)
		if !ok {
			continue
		}
		penX += b.kerning(prev, r)

		if g.Width > 0 && g.Height > 0 {
			b.appendQuad(mesh, g, penX, penY)
		}
		penX += float32(g.XAdvance)
		prev = r
	}

	if penX > maxX {
		maxX = penX
	}
	mesh.Width = maxX
	mesh.Height = float32(lines) * float32(b.font.LineHeight)
	return mesh
}

// appendQuad emits four vertices and six indices for one glyph.
func (b *Builder) appendQuad(mesh *Mesh, g types.FontGlyph, penX, penY float32) {
	x0 := penX + float32(g.XOffset)
	y0 := penY + float32(g.YOffset)
	x1 := x0 + float32(g.Width)
	y1 := y0 + float32(g.Height)

	atlasW := float32(b.font.AtlasSizeX)
	atlasH := float32(b.font.AtlasSizeY)
	u0 := float32(g.X) / atlasW
	v0 := float32(g.Y) / atlasH
	u1 := float32(g.X+g.Width) / atlasW
	v1 := float32(g.Y+g.Height) / atlasH

	base := uint32(len(mesh.Vertices) / FloatsPerVertex)
	mesh.Vertices = append(mesh.Vertices,
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		x1, y1, u1, v1,
		x0, y1, u0, v1,
	)
	mesh.Indices = append(mesh.Indices,
		base, base+1, base+2,
		base+2, base+3, base,
	)
}

func (b *Builder) glyph(r rune) (types.FontGlyph, bool) {
	if g, ok := b.glyphs[r]; ok {
		return g, true
	}
	if g, ok := b.glyphs[b.fallback]; ok {
		core.LogDebug("glyph for %q missing in font %q, using fallback", r, b.font.Face)
		return g, true
	}
	return types.FontGlyph{}, false
}

func (b *Builder) kerning(prev, next rune) float32 {
	if prev < 0 {
		return 0
	}
	return float32(b.kernings[[2]rune{prev, next}])
}
