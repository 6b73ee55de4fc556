// Package gpu abstracts the graphics API calls the demo needs, so shader
// building, scoped program binding and drawing can run against a fake in
// tests and against OpenGL in the binary.
package gpu

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/shapeview/internal/engine/mesh"
)

// Stage names a shader stage.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: compile failed: %s", e.Stage, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", e.Log)
}

// GLError reports an error flag raised by the driver after an operation.
type GLError struct {
	Op   string
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("%s: %s (0x%04X)", e.Op, ErrorName(e.Code), e.Code)
}

// ErrorName returns the symbolic name of a glGetError code.
func ErrorName(code uint32) string {
	switch code {
	case 0x0500:
		return "GL_INVALID_ENUM"
	case 0x0501:
		return "GL_INVALID_VALUE"
	case 0x0502:
		return "GL_INVALID_OPERATION"
	case 0x0503:
		return "GL_STACK_OVERFLOW"
	case 0x0504:
		return "GL_STACK_UNDERFLOW"
	case 0x0505:
		return "GL_OUT_OF_MEMORY"
	case 0x0506:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "unknown error"
	}
}

// MeshBuffers are the GPU-resident buffers of one uploaded mesh.
type MeshBuffers struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Device is the graphics collaborator: program compilation, uniform upload,
// static mesh upload and indexed drawing on a single current context.
type Device interface {
	// CompileProgram compiles both stages and links them. It returns
	// *CompileError or *LinkError on failure.
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(program uint32)
	UniformLocation(program uint32, name string) int32

	// CurrentProgram returns the program bound to the global program slot.
	CurrentProgram() uint32
	UseProgram(program uint32)

	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
	Uniform3f(location int32, v mgl32.Vec3)
	UniformMatrix4(location int32, m mgl32.Mat4)

	UploadMesh(m *mesh.Mesh) (MeshBuffers, error)
	DeleteMesh(b MeshBuffers)
	DrawIndexed(b MeshBuffers) error

	Clear()
	Viewport(width, height int)
	SetWireframe(enabled bool)
	SetBackfaceCulling(enabled bool)
	ReadPixels(width, height int) []byte
}
