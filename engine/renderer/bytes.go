package renderer

import (
	"encoding/binary"
	"math"
)

// Float32Bytes packs float32 scalars into the byte order the GPU consumes
// buffer stores in on little-endian hosts.
func Float32Bytes(values []float32) []byte {
	out := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// Uint32Bytes packs 32-bit indices the same way.
func Uint32Bytes(values []uint32) []byte {
	out := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}
