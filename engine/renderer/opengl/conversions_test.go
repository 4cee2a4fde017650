package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"

	"github.com/gpietz/go-gl-forge/engine/renderer"
	"github.com/gpietz/go-gl-forge/engine/renderer/vertex"
)

func TestUsageToGL(t *testing.T) {
	assert.Equal(t, uint32(gl.STATIC_DRAW), usageToGL(renderer.UsageStatic))
	assert.Equal(t, uint32(gl.DYNAMIC_DRAW), usageToGL(renderer.UsageDynamic))
	assert.Equal(t, uint32(gl.STREAM_DRAW), usageToGL(renderer.UsageStream))
}

func TestComponentTypeToGL(t *testing.T) {
	cases := []struct {
		in   vertex.ComponentType
		want uint32
	}{
		{vertex.Float32, gl.FLOAT},
		{vertex.Int32, gl.INT},
		{vertex.Uint32, gl.UNSIGNED_INT},
		{vertex.Int16, gl.SHORT},
		{vertex.Uint16, gl.UNSIGNED_SHORT},
		{vertex.Int8, gl.BYTE},
		{vertex.Uint8, gl.UNSIGNED_BYTE},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, componentTypeToGL(c.in), c.in.String())
	}
}

func TestWrapToGL(t *testing.T) {
	assert.Equal(t, int32(gl.REPEAT), wrapToGL(WrapRepeat))
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), wrapToGL(WrapClampToEdge))
	assert.Equal(t, int32(gl.MIRRORED_REPEAT), wrapToGL(WrapMirroredRepeat))
}

func TestFilterToGL(t *testing.T) {
	assert.Equal(t, int32(gl.NEAREST), magFilterToGL(FilterNearest))
	assert.Equal(t, int32(gl.LINEAR), magFilterToGL(FilterLinear))

	assert.Equal(t, int32(gl.NEAREST), minFilterToGL(FilterNearest, false))
	assert.Equal(t, int32(gl.LINEAR), minFilterToGL(FilterLinear, false))
	assert.Equal(t, int32(gl.NEAREST_MIPMAP_NEAREST), minFilterToGL(FilterNearest, true))
	assert.Equal(t, int32(gl.LINEAR_MIPMAP_LINEAR), minFilterToGL(FilterLinear, true))
}

func TestModeToGL(t *testing.T) {
	assert.Equal(t, uint32(gl.TRIANGLES), modeToGL(renderer.ModeTriangles))
	assert.Equal(t, uint32(gl.TRIANGLE_STRIP), modeToGL(renderer.ModeTriangleStrip))
	assert.Equal(t, uint32(gl.LINES), modeToGL(renderer.ModeLines))
	assert.Equal(t, uint32(gl.POINTS), modeToGL(renderer.ModePoints))
}
