// Package opengl provides the OpenGL 4.1 and GLFW backend for glboot.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glboot"
)

// Device implements glboot.Device on the current OpenGL context.
type Device struct{}

// NewDevice loads the OpenGL function pointers for the context current on
// the calling thread. Call it after the window's context is made current.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	glboot.Logger().Info("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Device{}, nil
}

func (*Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*Device) BindVertexArray(id uint32) { gl.BindVertexArray(id) }

func (*Device) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (*Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*Device) BindBuffer(target glboot.BufferTarget, id uint32) {
	gl.BindBuffer(bufferTarget(target), id)
}

func (*Device) BufferData(target glboot.BufferTarget, data []float32, usage glboot.BufferUsage) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, bufferUsage(usage))
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), bufferUsage(usage))
}

func (*Device) DeleteBuffer(id uint32) { gl.DeleteBuffers(1, &id) }

func (*Device) VertexAttribPointer(index uint32, size int32, typ glboot.AttribType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, attribType(typ), normalized, stride, offset)
}

func (*Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*Device) CreateShader(stage glboot.Stage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (*Device) ShaderSource(id uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
}

func (*Device) CompileShader(id uint32) { gl.CompileShader(id) }

func (*Device) ShaderParam(id uint32, param glboot.ShaderParam) int32 {
	var v int32
	switch param {
	case glboot.CompileStatus:
		gl.GetShaderiv(id, gl.COMPILE_STATUS, &v)
	case glboot.ShaderInfoLogLength:
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &v)
	}
	return v
}

func (*Device) ShaderInfoLog(id uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	log := make([]byte, length+1)
	gl.GetShaderInfoLog(id, length, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (*Device) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (*Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (*Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*Device) LinkProgram(id uint32) { gl.LinkProgram(id) }

func (*Device) ProgramParam(id uint32, param glboot.ProgramParam) int32 {
	var v int32
	switch param {
	case glboot.LinkStatus:
		gl.GetProgramiv(id, gl.LINK_STATUS, &v)
	case glboot.ProgramInfoLogLength:
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &v)
	}
	return v
}

func (*Device) ProgramInfoLog(id uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	log := make([]byte, length+1)
	gl.GetProgramInfoLog(id, length, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (*Device) UseProgram(id uint32) { gl.UseProgram(id) }

func (*Device) DeleteProgram(id uint32) { gl.DeleteProgram(id) }

func (*Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*Device) Clear(mask glboot.ClearMask) {
	var bits uint32
	if mask&glboot.ColorBufferBit != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&glboot.DepthBufferBit != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// Error returns the next error flag. glboot.ErrorCode values are the GL enums.
func (*Device) Error() glboot.ErrorCode { return glboot.ErrorCode(gl.GetError()) }

func bufferTarget(t glboot.BufferTarget) uint32 {
	switch t {
	case glboot.ArrayBuffer:
		return gl.ARRAY_BUFFER
	default:
		panic(fmt.Sprintf("opengl: unknown buffer target %d", t))
	}
}

func bufferUsage(u glboot.BufferUsage) uint32 {
	switch u {
	case glboot.StaticDraw:
		return gl.STATIC_DRAW
	case glboot.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case glboot.StreamDraw:
		return gl.STREAM_DRAW
	default:
		panic(fmt.Sprintf("opengl: unknown buffer usage %d", u))
	}
}

func attribType(t glboot.AttribType) uint32 {
	switch t {
	case glboot.Float:
		return gl.FLOAT
	default:
		panic(fmt.Sprintf("opengl: unknown attribute type %d", t))
	}
}

func shaderType(s glboot.Stage) uint32 {
	switch s {
	case glboot.StageVertex:
		return gl.VERTEX_SHADER
	case glboot.StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		panic(fmt.Sprintf("opengl: unknown shader stage %d", s))
	}
}

var _ glboot.Device = (*Device)(nil)
