// Package vertex describes interleaved vertex records: which attributes one
// record carries, how they are packed and what a shader stage should read
// from each binding slot.
package vertex

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSlot         = errors.New("attribute slot already present in layout")
	ErrInvalidComponentCount = errors.New("component count must be between 1 and 4")
	ErrLayoutFrozen          = errors.New("layout is frozen and cannot be modified")
)

// ComponentType is the scalar storage type of one attribute component.
type ComponentType uint8

const (
	Float32 ComponentType = iota
	Int32
	Uint32
	Int16
	Uint16
	Int8
	Uint8
)

// Size returns the byte size of one scalar of this type.
func (t ComponentType) Size() int {
	switch t {
	case Float32, Int32, Uint32:
		return 4
	case Int16, Uint16:
		return 2
	case Int8, Uint8:
		return 1
	}
	return 0
}

func (t ComponentType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	}
	return fmt.Sprintf("ComponentType(%d)", uint8(t))
}

// Attribute declares one vertex field: the binding slot a shader stage reads
// it from, how many components it has, their scalar type and whether integer
// values are rescaled to [0,1]/[-1,1] on read. Offset is derived by the
// layout and never set directly.
type Attribute struct {
	Slot       uint32
	Components int
	Type       ComponentType
	Normalized bool
	Offset     int
}

// Size returns the byte size of the attribute within one vertex record.
func (a Attribute) Size() int {
	return a.Components * a.Type.Size()
}

// Layout is an ordered sequence of attributes describing one complete
// interleaved vertex record. Attributes are appended with AddAttribute and
// the layout is frozen with Finalize; a frozen layout is immutable and may
// be shared read-only across any number of buffers.
type Layout struct {
	attributes []Attribute
	stride     int
	maxAlign   int
	frozen     bool
}

func NewLayout() *Layout {
	return &Layout{maxAlign: 1}
}

// AddAttribute appends a descriptor for the given slot. The byte offset is
// the running total of all previously added attributes, aligned to the
// component type's natural alignment.
func (l *Layout) AddAttribute(slot uint32, components int, t ComponentType, normalized bool) error {
	if l.frozen {
		return ErrLayoutFrozen
	}
	if components < 1 || components > 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidComponentCount, components)
	}
	for _, a := range l.attributes {
		if a.Slot == slot {
			return fmt.Errorf("%w: slot %d", ErrDuplicateSlot, slot)
		}
	}

	align := t.Size()
	offset := alignUp(l.stride, align)

	l.attributes = append(l.attributes, Attribute{
		Slot:       slot,
		Components: components,
		Type:       t,
		Normalized: normalized,
		Offset:     offset,
	})
	l.stride = offset + components*t.Size()
	if align > l.maxAlign {
		l.maxAlign = align
	}
	return nil
}

// Finalize pads the stride up to the alignment of the largest component type
// used and freezes the attribute list. Finalizing an already frozen layout
// is a no-op.
func (l *Layout) Finalize() *Layout {
	if l.frozen {
		return l
	}
	l.stride = alignUp(l.stride, l.maxAlign)
	l.frozen = true
	return l
}

// Stride returns the byte size of one complete vertex record.
func (l *Layout) Stride() int {
	return l.stride
}

// Frozen reports whether the layout has been finalized.
func (l *Layout) Frozen() bool {
	return l.frozen
}

// Attributes returns a copy of the descriptor list in packing order.
func (l *Layout) Attributes() []Attribute {
	out := make([]Attribute, len(l.attributes))
	copy(out, l.attributes)
	return out
}

// AttributeCount returns the number of descriptors in the layout.
func (l *Layout) AttributeCount() int {
	return len(l.attributes)
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
