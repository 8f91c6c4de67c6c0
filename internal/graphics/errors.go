package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLError is an error code reported by glGetError.
type GLError uint32

func (e GLError) Error() string {
	switch uint32(e) {
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
	}
	return fmt.Sprintf("GL error 0x%04X", uint32(e))
}

func glError(code uint32) error {
	return GLError(code)
}

// checkGL drains the GL error queue and returns the first error, if any.
func checkGL(op string) error {
	var first uint32
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == 0 {
			first = code
		}
	}
	if first != 0 {
		return fmt.Errorf("%s: %w", op, GLError(first))
	}
	return nil
}
