// Package demo wires configuration, window, camera, input and renderer into
// the render loop.
package demo

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/assets"
	"github.com/Faultbox/shapeview/internal/config"
	"github.com/Faultbox/shapeview/internal/engine/camera"
	"github.com/Faultbox/shapeview/internal/engine/debug"
	"github.com/Faultbox/shapeview/internal/engine/gpu"
	"github.com/Faultbox/shapeview/internal/engine/input"
	"github.com/Faultbox/shapeview/internal/engine/renderer"
	"github.com/Faultbox/shapeview/internal/engine/window"
	"github.com/Faultbox/shapeview/internal/logger"
)

// App is the running demo.
type App struct {
	config      *config.Config
	window      window.Window
	dev         gpu.Device
	renderer    *renderer.Renderer
	camera      *camera.Camera
	controller  *input.Controller
	screenshots *debug.ScreenshotCapture

	events []input.Event
}

// New opens the window, initializes OpenGL and builds the scene.
// Failures are returned as *StartupError.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing demo",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	// Create window (this also creates OpenGL context)
	win, err := window.Open(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Backend:    cfg.Window.Backend,
	})
	if err != nil {
		return nil, &StartupError{Stage: StageWindow, Err: err}
	}

	// Load GL (AFTER window, since OpenGL context must exist)
	dev, err := gpu.NewGL()
	if err != nil {
		win.Close()
		return nil, &StartupError{Stage: StageGL, Err: err}
	}

	shaders := assets.NewManager()
	shaders.AddDir(cfg.Shaders.Dir)
	defer shaders.Close()

	return NewWithDevice(cfg, win, dev, shaders)
}

// NewWithDevice builds the scene on an existing window and device. The app
// takes ownership of win; it is closed on failure.
func NewWithDevice(cfg *config.Config, win window.Window, dev gpu.Device, shaders ShaderSource) (*App, error) {
	width, height := win.Size()

	pos := mgl32.Vec3{cfg.Camera.TransX, cfg.Camera.TransY, cfg.Camera.TransZ}
	cam := camera.New(camera.Options{
		FOV:      cfg.Camera.FOV,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Near:     cfg.Camera.Near,
		Far:      cfg.Camera.Far,
		Position: &pos,
	})

	a := &App{
		config: cfg,
		window: win,
		dev:    dev,
		renderer: renderer.New(dev, renderer.Config{
			Width:   width,
			Height:  height,
			Culling: true,
		}),
		camera: cam,
		controller: input.NewController(cam, input.NewCursor(), input.Settings{
			RotateSensitivity: cfg.Input.RotateSensitivity,
			ScrollSpeed:       cfg.Input.ScrollSpeed,
		}),
		screenshots: debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		events:      make([]input.Event, 0, 16),
	}

	if err := buildScene(dev, shaders, cfg, a.renderer); err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("demo initialized successfully", zap.Int("objects", len(a.renderer.Objects())))
	return a, nil
}

// Run starts the render loop and returns when a quit is requested.
func (a *App) Run() error {
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.Frame() {
		// FPS counter
		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("frame", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000/float64(frameCount))),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("render loop stopped")
	return nil
}

// Frame runs one loop iteration: poll and dispatch input, draw, present.
// It returns false once a quit was requested; nothing is drawn then.
func (a *App) Frame() bool {
	// 1. Process input
	a.events = a.window.PollEvents(a.events[:0])
	actions := a.controller.Dispatch(a.events)
	if actions.Quit {
		return false
	}

	if actions.Resized {
		a.renderer.Resize(actions.Width, actions.Height)
	}
	if actions.ToggleWireframe {
		a.renderer.ToggleWireframe()
	}
	if actions.ToggleCulling {
		a.renderer.ToggleCulling()
	}

	// 2. Render
	a.renderer.Frame(a.camera)

	if actions.Screenshot {
		a.screenshot()
	}

	// 3. Present (swap buffers)
	a.window.SwapBuffers()
	return true
}

func (a *App) screenshot() {
	width, height := a.renderer.Size()
	pixels := a.dev.ReadPixels(width, height)
	name, err := a.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// Camera returns the demo camera.
func (a *App) Camera() *camera.Camera {
	return a.camera
}

// Renderer returns the demo renderer.
func (a *App) Renderer() *renderer.Renderer {
	return a.renderer
}

// Close releases the scene and the window.
func (a *App) Close() {
	logger.Info("closing demo")

	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
