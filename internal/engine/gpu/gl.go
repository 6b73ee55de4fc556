package gpu

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/engine/mesh"
	"github.com/Faultbox/shapeview/internal/logger"
)

// GL implements Device on the current OpenGL 4.1 core context.
type GL struct{}

var _ Device = (*GL)(nil)

// NewGL loads the OpenGL function pointers and sets the default pipeline
// state. IMPORTANT: must be called AFTER the context is made current.
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.ClearColor(1, 1, 1, 1)

	return &GL{}, nil
}

// CompileProgram compiles vertex and fragment shaders and links them into a
// program. Both stages are always compiled so both logs are reported.
func (d *GL) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, vertErr := compileShader(vertexSrc, gl.VERTEX_SHADER, StageVertex)
	fragShader, fragErr := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, StageFragment)
	if err := multierr.Combine(vertErr, fragErr); err != nil {
		if vertErr == nil {
			gl.DeleteShader(vertShader)
		}
		if fragErr == nil {
			gl.DeleteShader(fragShader)
		}
		return 0, err
	}
	defer gl.DeleteShader(vertShader)
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: trimLog(log)}
	}

	logger.Debug("shader program linked", zap.Uint32("program", program))
	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage Stage) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: trimLog(log)}
	}

	return shader, nil
}

func trimLog(log []byte) string {
	return strings.TrimSpace(strings.TrimRight(string(log), "\x00"))
}

// DeleteProgram releases a program.
func (d *GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UniformLocation returns the location of name, or -1 if it is not an active
// uniform of program.
func (d *GL) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// CurrentProgram queries GL_CURRENT_PROGRAM.
func (d *GL) CurrentProgram() uint32 {
	var id int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &id)
	return uint32(id)
}

// UseProgram binds program to the global program slot.
func (d *GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *GL) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *GL) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *GL) Uniform3f(location int32, v mgl32.Vec3) {
	gl.Uniform3fv(location, 1, &v[0])
}

func (d *GL) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// UploadMesh copies a mesh into static vertex and element buffers.
// Attribute layout: 0 position, 1 normal, 2 uv.
func (d *GL) UploadMesh(m *mesh.Mesh) (MeshBuffers, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return MeshBuffers{}, fmt.Errorf("upload %s: empty mesh", m.Name)
	}

	var b MeshBuffers
	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	vertexSize := int(unsafe.Sizeof(mesh.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &b.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	b.IndexCount = int32(len(m.Indices))
	gl.BindVertexArray(0)

	if err := checkError("upload " + m.Name); err != nil {
		d.DeleteMesh(b)
		return MeshBuffers{}, err
	}

	logger.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Uint32("vao", b.VAO),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int32("indices", b.IndexCount),
	)
	return b, nil
}

// DeleteMesh releases the buffers of an uploaded mesh.
func (d *GL) DeleteMesh(b MeshBuffers) {
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
	}
	if b.EBO != 0 {
		gl.DeleteBuffers(1, &b.EBO)
	}
}

// DrawIndexed draws the triangles of b with the currently bound program.
func (d *GL) DrawIndexed(b MeshBuffers) error {
	gl.BindVertexArray(b.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.IndexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	return checkError("draw")
}

func (d *GL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *GL) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *GL) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (d *GL) SetBackfaceCulling(enabled bool) {
	if enabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

// ReadPixels reads the back buffer as tightly packed RGBA rows, bottom row first.
func (d *GL) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// checkError drains the GL error flags and reports them as one error.
func checkError(op string) error {
	var errs []error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		errs = append(errs, &GLError{Op: op, Code: code})
	}
	return errors.Join(errs...)
}
