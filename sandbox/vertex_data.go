package sandbox

import (
	"github.com/gpietz/go-gl-forge/engine/renderer"
	"github.com/gpietz/go-gl-forge/engine/renderer/vertex"
)

// Attribute slots shared by all sandbox shaders.
const (
	SLOT_POSITION = 0
	SLOT_COLOR    = 1
	SLOT_TEXCOORD = 2
)

// positionLayout describes a bare position-only record: three float32.
func positionLayout() *vertex.Layout {
	layout := vertex.NewLayout()
	layout.AddAttribute(SLOT_POSITION, 3, vertex.Float32, false)
	return layout
}

// coloredLayout adds an RGBA color to the position record.
func coloredLayout() *vertex.Layout {
	layout := positionLayout()
	layout.AddAttribute(SLOT_COLOR, 4, vertex.Float32, false)
	return layout
}

// texturedLayout is the full record: position, color and texture coordinate.
func texturedLayout() *vertex.Layout {
	layout := coloredLayout()
	layout.AddAttribute(SLOT_TEXCOORD, 2, vertex.Float32, false)
	return layout
}

// texturedVertexData holds interleaved records plus the indices that stitch
// them into triangles.
type texturedVertexData struct {
	vertices []float32
	indices  []uint32
}

// appendTexturedVertices expands rows of [x, y, r, g, b, u, v] into full
// records with z=0 and alpha=1.
func appendTexturedVertices(rows [][7]float32) []float32 {
	out := make([]float32, 0, len(rows)*9)
	for _, row := range rows {
		out = append(out,
			row[0], row[1], 0.0,
			row[2], row[3], row[4], 1.0,
			row[5], row[6],
		)
	}
	return out
}

// createTriangleData is a centered triangle with one color per corner and
// texture coordinates spanning the lower half of the texture.
func createTriangleData() *texturedVertexData {
	return &texturedVertexData{
		vertices: appendTexturedVertices([][7]float32{
			{-0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 0.0},
			{0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0},
			{0.0, 0.5, 0.0, 0.0, 1.0, 0.5, 1.0},
		}),
		indices: []uint32{0, 1, 2},
	}
}

// createQuadData is a centered quad built from two triangles.
func createQuadData() *texturedVertexData {
	return &texturedVertexData{
		vertices: appendTexturedVertices([][7]float32{
			{0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 1.0},
			{0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 0.0},
			{-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 0.0},
			{-0.5, 0.5, 1.0, 1.0, 0.0, 0.0, 1.0},
		}),
		indices: []uint32{0, 1, 3, 1, 2, 3},
	}
}

// createBuffers uploads the data as one static vertex buffer and one static
// index buffer.
func (d *texturedVertexData) createBuffers(backend renderer.Backend) (*renderer.Buffer, *renderer.Buffer, error) {
	vbo, err := renderer.NewBuffer(backend, renderer.Float32Bytes(d.vertices), texturedLayout(), renderer.UsageStatic)
	if err != nil {
		return nil, nil, err
	}
	ibo, err := renderer.NewIndexBuffer(backend, d.indices, renderer.UsageStatic)
	if err != nil {
		vbo.Release()
		return nil, nil, err
	}
	return vbo, ibo, nil
}

// releaseBuffers frees any non-nil buffers, tolerating repeated calls.
func releaseBuffers(buffers ...*renderer.Buffer) {
	for _, b := range buffers {
		if b != nil {
			b.Release()
		}
	}
}
