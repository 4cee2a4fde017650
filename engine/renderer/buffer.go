package renderer

import (
	"errors"
	"fmt"

	"github.com/gpietz/go-gl-forge/engine/renderer/vertex"
)

var (
	ErrMisalignedData  = errors.New("data length is not a multiple of the layout stride")
	ErrOutOfRange      = errors.New("update range exceeds buffer capacity")
	ErrUseAfterRelease = errors.New("buffer used after release")
	ErrEmptyLayout     = errors.New("layout has no attributes")
)

// BufferState tracks the lifecycle of a Buffer. Released is terminal.
type BufferState uint8

const (
	StateUnbound BufferState = iota
	StateBound
	StateReleased
)

// Buffer owns a contiguous block of vertex (or index) data plus the backend
// storage handle it was uploaded to. The CPU-side copy is kept so the buffer
// can re-upload itself after a growth reallocation.
type Buffer struct {
	backend  Backend
	handle   BufferHandle
	kind     BufferKind
	layout   *vertex.Layout
	usage    Usage
	data     []byte
	capacity int
	state    BufferState
}

// NewBuffer constructs a vertex buffer from raw interleaved records. The
// layout is frozen on first use; data length must be an exact multiple of
// the record stride, a partial trailing record is a construction error.
func NewBuffer(backend Backend, data []byte, layout *vertex.Layout, usage Usage) (*Buffer, error) {
	if layout == nil || layout.AttributeCount() == 0 {
		return nil, ErrEmptyLayout
	}
	layout.Finalize()

	stride := layout.Stride()
	if len(data)%stride != 0 {
		return nil, fmt.Errorf("%w: %d bytes, stride %d", ErrMisalignedData, len(data), stride)
	}

	handle, err := backend.CreateBuffer(KindVertex, usage, data)
	if err != nil {
		return nil, err
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	return &Buffer{
		backend:  backend,
		handle:   handle,
		kind:     KindVertex,
		layout:   layout,
		usage:    usage,
		data:     owned,
		capacity: len(owned),
		state:    StateUnbound,
	}, nil
}

// NewIndexBuffer constructs an element buffer from 32-bit indices. It shares
// the vertex buffer's lifecycle and update machinery but carries no layout.
func NewIndexBuffer(backend Backend, indices []uint32, usage Usage) (*Buffer, error) {
	data := Uint32Bytes(indices)

	handle, err := backend.CreateBuffer(KindIndex, usage, data)
	if err != nil {
		return nil, err
	}

	return &Buffer{
		backend:  backend,
		handle:   handle,
		kind:     KindIndex,
		usage:    usage,
		data:     data,
		capacity: len(data),
		state:    StateUnbound,
	}, nil
}

// Update overwrites the byte range [offset, offset+len(p)) of the backing
// storage. Offsets need not be record-aligned, the backend operates on raw
// bytes. Writes past the current end grow the allocation geometrically and
// re-upload, except for static buffers which reject growth with ErrOutOfRange.
func (b *Buffer) Update(offset int, p []byte) error {
	if b.state == StateReleased {
		return ErrUseAfterRelease
	}
	if offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrOutOfRange, offset)
	}

	end := offset + len(p)
	if end <= len(b.data) {
		copy(b.data[offset:], p)
		return b.backend.BufferSubData(b.handle, offset, p)
	}

	if b.usage == UsageStatic {
		return fmt.Errorf("%w: write to %d exceeds %d and growth is disabled for static buffers",
			ErrOutOfRange, end, len(b.data))
	}

	if end > b.capacity {
		newCap := b.capacity * 2
		if newCap < end {
			newCap = end
		}
		b.capacity = newCap
	}
	grown := make([]byte, end, b.capacity)
	copy(grown, b.data)
	copy(grown[offset:], p)
	b.data = grown

	return b.backend.BufferData(b.handle, b.data)
}

// Bind activates the storage handle as the current data source and, for
// vertex buffers, configures the pipeline attribute slots per the layout.
// Binding an already bound buffer is a no-op beyond redundant pipeline calls.
func (b *Buffer) Bind() error {
	if b.state == StateReleased {
		return ErrUseAfterRelease
	}

	var err error
	switch b.kind {
	case KindIndex:
		err = b.backend.BindIndexBuffer(b.handle)
	default:
		err = b.backend.BindVertexBuffer(b.handle, b.layout)
	}
	if err != nil {
		return err
	}
	b.state = StateBound
	return nil
}

// Release frees the backend storage handle. The first call wins; any further
// calls are no-ops, and any other operation afterwards fails with
// ErrUseAfterRelease. Callers should defer this next to construction so the
// handle is freed exactly once on every exit path.
func (b *Buffer) Release() error {
	if b.state == StateReleased {
		return nil
	}
	err := b.backend.DeleteBuffer(b.handle)
	b.state = StateReleased
	b.handle = InvalidBufferHandle
	return err
}

// VertexCount returns the number of complete records in the buffer. Zero for
// index buffers, which report their count via IndexCount.
func (b *Buffer) VertexCount() int {
	if b.layout == nil || b.layout.Stride() == 0 {
		return 0
	}
	return len(b.data) / b.layout.Stride()
}

// IndexCount returns the number of 32-bit indices in an index buffer.
func (b *Buffer) IndexCount() int {
	if b.kind != KindIndex {
		return 0
	}
	return len(b.data) / 4
}

// Len returns the logical size of the buffer in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Capacity returns the allocated size in bytes; it only exceeds Len after a
// geometric growth.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Bytes returns the CPU-side copy of the buffer content.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

func (b *Buffer) Kind() BufferKind     { return b.kind }
func (b *Buffer) Usage() Usage         { return b.usage }
func (b *Buffer) State() BufferState   { return b.state }
func (b *Buffer) Handle() BufferHandle { return b.handle }

// Layout returns the shared, frozen layout. Nil for index buffers.
func (b *Buffer) Layout() *vertex.Layout {
	return b.layout
}
