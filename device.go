package glboot

import "fmt"

// Device is the subset of the OpenGL API the bootstrap issues calls into.
// It is the single explicit graphics context every component talks to.
// All methods must be called from the goroutine that owns the context.
type Device interface {
	GenVertexArray() uint32
	BindVertexArray(id uint32)
	DeleteVertexArray(id uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, id uint32)
	BufferData(target BufferTarget, data []float32, usage BufferUsage)
	DeleteBuffer(id uint32)

	VertexAttribPointer(index uint32, size int32, typ AttribType, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	CreateShader(stage Stage) uint32
	ShaderSource(id uint32, source string)
	CompileShader(id uint32)
	ShaderParam(id uint32, param ShaderParam) int32
	// ShaderInfoLog returns at most length bytes of the shader's info log.
	ShaderInfoLog(id uint32, length int32) string
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(id uint32)
	ProgramParam(id uint32, param ProgramParam) int32
	// ProgramInfoLog returns at most length bytes of the program's info log.
	ProgramInfoLog(id uint32, length int32) string
	UseProgram(id uint32)
	DeleteProgram(id uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	// Error returns and resets the oldest recorded error flag.
	Error() ErrorCode
}

// BufferTarget selects a buffer binding point.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
)

// BufferUsage hints how a buffer's data store will be accessed.
type BufferUsage int

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
	StreamDraw
)

// AttribType is the component type of a vertex attribute.
type AttribType int

const (
	Float AttribType = iota
)

// ShaderParam names a parameter queried from a shader object.
type ShaderParam int

const (
	CompileStatus ShaderParam = iota
	ShaderInfoLogLength
)

// ProgramParam names a parameter queried from a program object.
// Shader and program parameters are distinct types so a program's link
// status can never be read through the shader query.
type ProgramParam int

const (
	LinkStatus ProgramParam = iota
	ProgramInfoLogLength
)

// ClearMask selects the buffers cleared by Device.Clear.
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// ErrorCode is an OpenGL error flag. Values match the GL enums.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("GL_ERROR(0x%04X)", uint32(c))
	}
}
