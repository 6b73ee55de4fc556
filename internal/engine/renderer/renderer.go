// Package renderer draws the fixed object list of a scene each frame.
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/engine/gpu"
	"github.com/Faultbox/shapeview/internal/engine/shader"
	"github.com/Faultbox/shapeview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Wireframe bool
	Culling   bool
}

// Object is one drawable: its uploaded mesh and the program that shades it.
type Object struct {
	Name    string
	Program *shader.Program
	Buffers gpu.MeshBuffers
}

// View supplies the per-frame camera uniforms.
type View interface {
	ViewProj() mgl32.Mat4
	EyePosition() mgl32.Vec3
}

// Renderer handles all drawing. It owns the objects added to it.
type Renderer struct {
	config  Config
	dev     gpu.Device
	objects []Object
}

// New creates a renderer and applies the initial pipeline state.
func New(dev gpu.Device, cfg Config) *Renderer {
	r := &Renderer{
		config: cfg,
		dev:    dev,
	}
	dev.Viewport(cfg.Width, cfg.Height)
	dev.SetWireframe(cfg.Wireframe)
	dev.SetBackfaceCulling(cfg.Culling)
	return r
}

// Add appends an object to the draw list.
func (r *Renderer) Add(obj Object) {
	r.objects = append(r.objects, obj)
}

// Objects returns the draw list.
func (r *Renderer) Objects() []Object {
	return r.objects
}

// Close releases the programs and buffers of all objects.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("objects", len(r.objects)))
	for _, obj := range r.objects {
		obj.Program.Delete()
		r.dev.DeleteMesh(obj.Buffers)
	}
	r.objects = nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.dev.Viewport(width, height)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// ToggleWireframe flips polygon mode between fill and line.
func (r *Renderer) ToggleWireframe() {
	r.config.Wireframe = !r.config.Wireframe
	r.dev.SetWireframe(r.config.Wireframe)
	logger.Info("wireframe", zap.Bool("enabled", r.config.Wireframe))
}

// ToggleCulling flips back-face culling.
func (r *Renderer) ToggleCulling() {
	r.config.Culling = !r.config.Culling
	r.dev.SetBackfaceCulling(r.config.Culling)
	logger.Info("back-face culling", zap.Bool("enabled", r.config.Culling))
}

// Wireframe reports whether polygons are drawn as lines.
func (r *Renderer) Wireframe() bool {
	return r.config.Wireframe
}

// Culling reports whether back faces are culled.
func (r *Renderer) Culling() bool {
	return r.config.Culling
}

// Frame clears the target and draws every object with the view's uniforms.
// A failing draw is logged and skipped. Frame returns the number of objects
// drawn successfully.
func (r *Renderer) Frame(view View) int {
	r.dev.Clear()

	viewProj := view.ViewProj()
	eye := view.EyePosition()

	drawn := 0
	for _, obj := range r.objects {
		err := obj.Program.With(viewProj, eye, func() error {
			return r.dev.DrawIndexed(obj.Buffers)
		})
		if err != nil {
			logger.Warn("draw failed", zap.String("object", obj.Name), zap.Error(err))
			continue
		}
		drawn++
	}
	return drawn
}
