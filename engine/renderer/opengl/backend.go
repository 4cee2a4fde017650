// Package opengl implements the renderer backend on top of OpenGL 4.1 core.
// Everything in here must run on the thread that owns the GL context.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/renderer"
	"github.com/gpietz/go-gl-forge/engine/renderer/vertex"
)

type bufferInfo struct {
	id     uint32
	kind   renderer.BufferKind
	usage  renderer.Usage
	size   int
	vao    uint32
	layout *vertex.Layout
}

// Backend owns all GL buffer objects and the vertex array objects that carry
// their attribute configuration. One VAO is kept per vertex buffer; the
// attribute pointers are (re)recorded whenever the buffer is first bound or
// bound with a different layout.
type Backend struct {
	buffers    map[renderer.BufferHandle]*bufferInfo
	currentVAO uint32
}

// NewBackend initializes the GL function pointers. A current context is
// required before this is called.
func NewBackend() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	core.LogInfo("OpenGL %s (%s)", version, vendor)

	return &Backend{
		buffers: make(map[renderer.BufferHandle]*bufferInfo),
	}, nil
}

func (b *Backend) CreateBuffer(kind renderer.BufferKind, usage renderer.Usage, data []byte) (renderer.BufferHandle, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return renderer.InvalidBufferHandle, fmt.Errorf("glGenBuffers returned no buffer")
	}

	// Uploads always go through ARRAY_BUFFER; the element-array binding
	// point is VAO state and must not be disturbed here.
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), ptrOrNil(data), usageToGL(usage))
	if err := CheckError("glBufferData"); err != nil {
		gl.DeleteBuffers(1, &id)
		return renderer.InvalidBufferHandle, err
	}

	handle := renderer.BufferHandle(id)
	b.buffers[handle] = &bufferInfo{
		id:    id,
		kind:  kind,
		usage: usage,
		size:  len(data),
	}
	return handle, nil
}

func (b *Backend) BufferData(handle renderer.BufferHandle, data []byte) error {
	info, err := b.lookup(handle)
	if err != nil {
		return err
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, info.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), ptrOrNil(data), usageToGL(info.usage))
	info.size = len(data)
	return CheckError("glBufferData")
}

func (b *Backend) BufferSubData(handle renderer.BufferHandle, offset int, data []byte) error {
	info, err := b.lookup(handle)
	if err != nil {
		return err
	}
	if offset+len(data) > info.size {
		return fmt.Errorf("buffer sub data range [%d, %d) exceeds store of %d bytes",
			offset, offset+len(data), info.size)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, info.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data), ptrOrNil(data))
	return CheckError("glBufferSubData")
}

func (b *Backend) BindVertexBuffer(handle renderer.BufferHandle, layout *vertex.Layout) error {
	info, err := b.lookup(handle)
	if err != nil {
		return err
	}
	if info.kind != renderer.KindVertex {
		return fmt.Errorf("handle %d is not a vertex buffer", handle)
	}

	if info.vao == 0 || info.layout != layout {
		if err := b.configureVAO(info, layout); err != nil {
			return err
		}
	}

	gl.BindVertexArray(info.vao)
	b.currentVAO = info.vao
	return nil
}

// configureVAO records the attribute pointers for this buffer into its VAO.
func (b *Backend) configureVAO(info *bufferInfo, layout *vertex.Layout) error {
	if info.vao == 0 {
		gl.GenVertexArrays(1, &info.vao)
	}
	gl.BindVertexArray(info.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, info.id)

	stride := int32(layout.Stride())
	for _, attr := range layout.Attributes() {
		gl.EnableVertexAttribArray(attr.Slot)
		gl.VertexAttribPointerWithOffset(
			attr.Slot,
			int32(attr.Components),
			componentTypeToGL(attr.Type),
			attr.Normalized,
			stride,
			uintptr(attr.Offset),
		)
	}
	info.layout = layout
	return CheckError("glVertexAttribPointer")
}

func (b *Backend) BindIndexBuffer(handle renderer.BufferHandle) error {
	info, err := b.lookup(handle)
	if err != nil {
		return err
	}
	if info.kind != renderer.KindIndex {
		return fmt.Errorf("handle %d is not an index buffer", handle)
	}
	if b.currentVAO == 0 {
		return fmt.Errorf("no vertex buffer bound; the element binding lives in its VAO")
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, info.id)
	return CheckError("glBindBuffer(ELEMENT_ARRAY_BUFFER)")
}

func (b *Backend) DeleteBuffer(handle renderer.BufferHandle) error {
	info, err := b.lookup(handle)
	if err != nil {
		return err
	}
	if info.vao != 0 {
		if b.currentVAO == info.vao {
			gl.BindVertexArray(0)
			b.currentVAO = 0
		}
		gl.DeleteVertexArrays(1, &info.vao)
	}
	gl.DeleteBuffers(1, &info.id)
	delete(b.buffers, handle)
	return CheckError("glDeleteBuffers")
}

func (b *Backend) Draw(mode renderer.PrimitiveMode, first, count int) error {
	gl.DrawArrays(modeToGL(mode), int32(first), int32(count))
	return CheckError("glDrawArrays")
}

func (b *Backend) DrawIndexed(mode renderer.PrimitiveMode, count int) error {
	gl.DrawElements(modeToGL(mode), int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	return CheckError("glDrawElements")
}

// Clear clears the color and depth buffers with the given color.
func (b *Backend) Clear(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport updates the GL viewport, typically from a framebuffer resize.
func (b *Backend) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// EnableDepthTest turns on depth testing for the 3D scenes.
func (b *Backend) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

// EnableBlend enables standard alpha blending, used by the text overlay.
func (b *Backend) EnableBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (b *Backend) lookup(handle renderer.BufferHandle) (*bufferInfo, error) {
	info, ok := b.buffers[handle]
	if !ok {
		return nil, fmt.Errorf("unknown buffer handle %d", handle)
	}
	return info, nil
}

func ptrOrNil(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func usageToGL(u renderer.Usage) uint32 {
	switch u {
	case renderer.UsageDynamic:
		return gl.DYNAMIC_DRAW
	case renderer.UsageStream:
		return gl.STREAM_DRAW
	default:
		return gl.STATIC_DRAW
	}
}

func componentTypeToGL(t vertex.ComponentType) uint32 {
	switch t {
	case vertex.Float32:
		return gl.FLOAT
	case vertex.Int32:
		return gl.INT
	case vertex.Uint32:
		return gl.UNSIGNED_INT
	case vertex.Int16:
		return gl.SHORT
	case vertex.Uint16:
		return gl.UNSIGNED_SHORT
	case vertex.Int8:
		return gl.BYTE
	case vertex.Uint8:
		return gl.UNSIGNED_BYTE
	}
	return gl.FLOAT
}

func wrapToGL(w WrapMode) int32 {
	switch w {
	case WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

func magFilterToGL(f FilterMode) int32 {
	if f == FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// minFilterToGL picks the mipmapped variant when a mip chain was uploaded.
func minFilterToGL(f FilterMode, mip bool) int32 {
	switch {
	case f == FilterNearest && mip:
		return gl.NEAREST_MIPMAP_NEAREST
	case f == FilterNearest:
		return gl.NEAREST
	case mip:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.LINEAR
	}
}

func modeToGL(m renderer.PrimitiveMode) uint32 {
	switch m {
	case renderer.ModePoints:
		return gl.POINTS
	case renderer.ModeLines:
		return gl.LINES
	case renderer.ModeLineStrip:
		return gl.LINE_STRIP
	case renderer.ModeLineLoop:
		return gl.LINE_LOOP
	case renderer.ModeTriangleStrip:
		return gl.TRIANGLE_STRIP
	case renderer.ModeTriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}
