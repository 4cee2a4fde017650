package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/math"
)

// ShaderProgram wraps a linked vertex+fragment program. It is the collaborator
// that hands out attribute slot indices when building buffer layouts.
type ShaderProgram struct {
	id       uint32
	uniforms map[string]int32
	released bool
}

// NewShaderProgram compiles and links the two stages. Compile errors carry
// the driver's info log.
func NewShaderProgram(vertexSrc, fragmentSrc string) (*ShaderProgram, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	// The shader objects are owned by the program after linking.
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		logText := programInfoLog(program)
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %s", logText)
	}

	return &ShaderProgram{
		id:       program,
		uniforms: make(map[string]int32),
	}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %s", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

// Use makes this the active program for subsequent draws.
func (p *ShaderProgram) Use() {
	gl.UseProgram(p.id)
}

// ID returns the GL program name.
func (p *ShaderProgram) ID() uint32 {
	return p.id
}

// AttributeLocation resolves an attribute name to the binding slot a buffer
// layout should target.
func (p *ShaderProgram) AttributeLocation(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("attribute %q not found in program %d", name, p.id)
	}
	return uint32(loc), nil
}

func (p *ShaderProgram) uniformLocation(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		core.LogWarn("uniform %q not found in program %d", name, p.id)
	}
	// Cache misses too, so an optimized-away uniform is only probed once.
	p.uniforms[name] = loc
	return loc
}

func (p *ShaderProgram) SetUniform1i(name string, value int32) {
	gl.Uniform1i(p.uniformLocation(name), value)
}

func (p *ShaderProgram) SetUniform1f(name string, value float32) {
	gl.Uniform1f(p.uniformLocation(name), value)
}

func (p *ShaderProgram) SetUniform2f(name string, x, y float32) {
	gl.Uniform2f(p.uniformLocation(name), x, y)
}

func (p *ShaderProgram) SetUniform3f(name string, v math.Vec3) {
	gl.Uniform3f(p.uniformLocation(name), v.X, v.Y, v.Z)
}

func (p *ShaderProgram) SetUniform4f(name string, v math.Vec4) {
	gl.Uniform4f(p.uniformLocation(name), v.X, v.Y, v.Z, v.W)
}

func (p *ShaderProgram) SetUniformMatrix4(name string, m *math.Mat4) {
	gl.UniformMatrix4fv(p.uniformLocation(name), 1, false, &m.Data[0])
}

// Release deletes the program. Safe to call more than once.
func (p *ShaderProgram) Release() {
	if p.released {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
	p.released = true
}
