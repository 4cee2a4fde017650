package renderer

import (
	"github.com/gpietz/go-gl-forge/engine/renderer/vertex"
)

// BufferHandle identifies one storage allocation owned by a backend. Zero is
// never a valid handle.
type BufferHandle uint32

const InvalidBufferHandle BufferHandle = 0

// BufferKind determines how a buffer is consumed by the pipeline.
type BufferKind uint8

const (
	// Interleaved vertex records, described by a vertex.Layout.
	KindVertex BufferKind = iota
	// 32-bit element indices.
	KindIndex
)

// Usage hints at the expected update frequency of a buffer. It guides the
// backend's storage strategy only and never affects correctness, with one
// exception: static buffers refuse to grow on update.
type Usage uint8

const (
	UsageStatic Usage = iota
	UsageDynamic
	UsageStream
)

func (u Usage) String() string {
	switch u {
	case UsageStatic:
		return "static"
	case UsageDynamic:
		return "dynamic"
	case UsageStream:
		return "stream"
	}
	return "unknown"
}

// PrimitiveMode selects how consecutive vertices are assembled into
// primitives by a draw call.
type PrimitiveMode uint8

const (
	ModePoints PrimitiveMode = iota
	ModeLines
	ModeLineStrip
	ModeLineLoop
	ModeTriangles
	ModeTriangleStrip
	ModeTriangleFan
)

// Backend is the seam between buffer bookkeeping and the graphics API. It is
// passed explicitly to everything that needs it, so the core stays testable
// without a live context: tests substitute a backend that records calls.
//
// All methods must be called from the thread that owns the graphics context.
type Backend interface {
	// CreateBuffer allocates a storage handle and uploads the initial data.
	// The handle is exclusively owned by the caller from then on.
	CreateBuffer(kind BufferKind, usage Usage, data []byte) (BufferHandle, error)
	// BufferData replaces the whole data store of the handle, reallocating
	// the backing storage if the size changed.
	BufferData(handle BufferHandle, data []byte) error
	// BufferSubData overwrites a byte range of the existing data store.
	BufferSubData(handle BufferHandle, offset int, data []byte) error
	// BindVertexBuffer makes the handle the current vertex source and
	// configures one pipeline attribute slot per layout descriptor.
	BindVertexBuffer(handle BufferHandle, layout *vertex.Layout) error
	// BindIndexBuffer makes the handle the current element index source.
	BindIndexBuffer(handle BufferHandle) error
	// DeleteBuffer releases the storage behind the handle.
	DeleteBuffer(handle BufferHandle) error

	// Draw issues a non-indexed draw over the currently bound vertex buffer.
	Draw(mode PrimitiveMode, first, count int) error
	// DrawIndexed issues an indexed draw using the currently bound index buffer.
	DrawIndexed(mode PrimitiveMode, count int) error
}
