// Package shader builds lit shader programs and binds them for drawing.
package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/engine/gpu"
	"github.com/Faultbox/shapeview/internal/engine/shading"
	"github.com/Faultbox/shapeview/internal/logger"
)

// Program is a linked shader program with its static uniforms applied.
type Program struct {
	Name string

	dev       gpu.Device
	handle    uint32
	locations map[string]int32

	// Per-frame uniforms.
	locViewProj  int32
	locCameraPos int32
}

// Build compiles and links a program, then applies the static uniform set of
// params once. The program binding that was current before the call is
// restored before Build returns.
func Build(dev gpu.Device, name, vertexSrc, fragmentSrc string, params shading.Params) (*Program, error) {
	handle, err := dev.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("build %s program: %w", name, err)
	}

	p := &Program{
		Name:      name,
		dev:       dev,
		handle:    handle,
		locations: make(map[string]int32),
	}
	p.locViewProj = p.Location(shading.UniformViewProj)
	p.locCameraPos = p.Location(shading.UniformCameraPos)
	if p.locCameraPos < 0 {
		p.locCameraPos = p.Location(shading.UniformViewPos)
	}

	if err := p.apply(params.Uniforms()); err != nil {
		dev.DeleteProgram(handle)
		return nil, fmt.Errorf("build %s program: %w", name, err)
	}

	logger.Debug("shader program built",
		zap.String("program", name),
		zap.Uint32("handle", handle),
		zap.Int32("viewProj", p.locViewProj),
		zap.Int32("cameraPos", p.locCameraPos),
	)
	return p, nil
}

func (p *Program) apply(uniforms []shading.Uniform) error {
	prev := p.dev.CurrentProgram()
	p.dev.UseProgram(p.handle)
	defer p.dev.UseProgram(prev)

	for _, u := range uniforms {
		if err := p.Set(u.Name, u.Value); err != nil {
			return err
		}
	}
	return nil
}

// Handle returns the GPU program handle.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Location returns the location of a uniform, querying the device only the
// first time a name is seen. Inactive uniforms map to -1.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.dev.UniformLocation(p.handle, name)
	if loc < 0 {
		logger.Debug("uniform not active", zap.String("program", p.Name), zap.String("uniform", name))
	}
	p.locations[name] = loc
	return loc
}

// Set uploads one uniform value. The program must be bound.
func (p *Program) Set(name string, value any) error {
	loc := p.Location(name)
	switch v := value.(type) {
	case float32:
		p.dev.Uniform1f(loc, v)
	case int32:
		p.dev.Uniform1i(loc, v)
	case mgl32.Vec3:
		p.dev.Uniform3f(loc, v)
	case mgl32.Mat4:
		p.dev.UniformMatrix4(loc, v)
	default:
		return fmt.Errorf("uniform %q: unsupported value type %T", name, value)
	}
	return nil
}

// Bind makes p the current program and uploads the per-frame uniforms.
// The returned function restores the binding that was current before.
//
//	restore := prog.Bind(viewProj, eye)
//	defer restore()
func (p *Program) Bind(viewProj mgl32.Mat4, eye mgl32.Vec3) (restore func()) {
	prev := p.dev.CurrentProgram()
	p.dev.UseProgram(p.handle)
	p.dev.UniformMatrix4(p.locViewProj, viewProj)
	p.dev.Uniform3f(p.locCameraPos, eye)
	return func() { p.dev.UseProgram(prev) }
}

// With runs draw with p bound. The previous binding is restored when draw
// returns, fails or panics.
func (p *Program) With(viewProj mgl32.Mat4, eye mgl32.Vec3, draw func() error) error {
	restore := p.Bind(viewProj, eye)
	defer restore()
	return draw()
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.handle != 0 {
		p.dev.DeleteProgram(p.handle)
		p.handle = 0
	}
}
