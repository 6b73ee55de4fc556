// Package gputest provides an in-memory gpu.Device that records what the
// code under test asked the graphics API to do.
package gputest

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/shapeview/internal/engine/gpu"
	"github.com/Faultbox/shapeview/internal/engine/mesh"
)

// ErrDrawFailed is returned by DrawIndexed when FailDraw is set.
var ErrDrawFailed = errors.New("gputest: draw failed")

// Draw is one recorded DrawIndexed call.
type Draw struct {
	Program uint32
	VAO     uint32
	Count   int32
}

type program struct {
	vertexSrc   string
	fragmentSrc string
	locations   map[string]int32
	values      map[int32]any
}

// Device is a recording fake. The zero value is not usable, call New.
type Device struct {
	// Uniforms lists the active uniform names of every compiled program.
	// Names missing from it resolve to location -1.
	Uniforms []string

	// CompileErr and LinkErr make CompileProgram fail with the given error.
	CompileErr error
	LinkErr    error
	// FailDraw makes DrawIndexed return ErrDrawFailed.
	FailDraw bool

	current  uint32
	nextID   uint32
	programs map[uint32]*program
	meshes   map[uint32]gpu.MeshBuffers

	Draws      []Draw
	Clears     int
	Viewports  [][2]int
	Wireframe  bool
	Culling    bool
	UseCalls   []uint32
	PixelValue byte
}

var _ gpu.Device = (*Device)(nil)

// New returns a fake whose programs expose the given active uniform names.
func New(uniforms ...string) *Device {
	return &Device{
		Uniforms: uniforms,
		programs: make(map[uint32]*program),
		meshes:   make(map[uint32]gpu.MeshBuffers),
	}
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	if d.CompileErr != nil {
		return 0, d.CompileErr
	}
	if d.LinkErr != nil {
		return 0, d.LinkErr
	}
	p := &program{
		vertexSrc:   vertexSrc,
		fragmentSrc: fragmentSrc,
		locations:   make(map[string]int32, len(d.Uniforms)),
		values:      make(map[int32]any),
	}
	for i, name := range d.Uniforms {
		p.locations[name] = int32(i)
	}
	id := d.id()
	d.programs[id] = p
	return id, nil
}

func (d *Device) DeleteProgram(id uint32) {
	delete(d.programs, id)
}

func (d *Device) UniformLocation(id uint32, name string) int32 {
	p, ok := d.programs[id]
	if !ok {
		return -1
	}
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) CurrentProgram() uint32 {
	return d.current
}

func (d *Device) UseProgram(id uint32) {
	d.UseCalls = append(d.UseCalls, id)
	d.current = id
}

func (d *Device) set(location int32, v any) {
	if location < 0 {
		return
	}
	p, ok := d.programs[d.current]
	if !ok {
		panic(fmt.Sprintf("gputest: uniform set with no valid program bound (current=%d)", d.current))
	}
	p.values[location] = v
}

func (d *Device) Uniform1f(location int32, v float32) { d.set(location, v) }
func (d *Device) Uniform1i(location int32, v int32) { d.set(location, v) }
func (d *Device) Uniform3f(location int32, v mgl32.Vec3) { d.set(location, v) }
func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) { d.set(location, m) }

// Value returns the value last uploaded to the named uniform of a program.
func (d *Device) Value(id uint32, name string) (any, bool) {
	p, ok := d.programs[id]
	if !ok {
		return nil, false
	}
	loc, ok := p.locations[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

// Programs returns the number of live programs.
func (d *Device) Programs() int {
	return len(d.programs)
}

// Meshes returns the number of live mesh uploads.
func (d *Device) Meshes() int {
	return len(d.meshes)
}

func (d *Device) UploadMesh(m *mesh.Mesh) (gpu.MeshBuffers, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return gpu.MeshBuffers{}, fmt.Errorf("upload %s: empty mesh", m.Name)
	}
	b := gpu.MeshBuffers{
		VAO:        d.id(),
		VBO:        d.id(),
		EBO:        d.id(),
		IndexCount: int32(len(m.Indices)),
	}
	d.meshes[b.VAO] = b
	return b, nil
}

func (d *Device) DeleteMesh(b gpu.MeshBuffers) {
	delete(d.meshes, b.VAO)
}

func (d *Device) DrawIndexed(b gpu.MeshBuffers) error {
	if d.FailDraw {
		return ErrDrawFailed
	}
	d.Draws = append(d.Draws, Draw{Program: d.current, VAO: b.VAO, Count: b.IndexCount})
	return nil
}

func (d *Device) Clear() {
	d.Clears++
}

func (d *Device) Viewport(width, height int) {
	d.Viewports = append(d.Viewports, [2]int{width, height})
}

func (d *Device) SetWireframe(enabled bool) {
	d.Wireframe = enabled
}

func (d *Device) SetBackfaceCulling(enabled bool) {
	d.Culling = enabled
}

// ReadPixels returns a buffer filled with PixelValue.
func (d *Device) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	for i := range pixels {
		pixels[i] = d.PixelValue
	}
	return pixels
}

// Sources returns the shader sources a program was compiled from.
func (d *Device) Sources(id uint32) (vertexSrc, fragmentSrc string) {
	if p, ok := d.programs[id]; ok {
		return p.vertexSrc, p.fragmentSrc
	}
	return "", ""
}
