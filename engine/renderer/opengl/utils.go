package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CheckError drains the GL error queue and reports the first error found,
// tagged with the operation that triggered it.
func CheckError(op string) error {
	var first error
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return first
		}
		if first == nil {
			first = fmt.Errorf("%s: %s", op, errorString(code))
		}
	}
}

func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04x", code)
	}
}
