package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/engine/input"
	"github.com/Faultbox/shapeview/internal/logger"
)

// GLFW wraps a GLFW window. Callbacks push into a queue that PollEvents
// drains after glfw.PollEvents.
type GLFW struct {
	config Config
	win    *glfw.Window
	queue  *input.Queue
}

var _ Window = (*GLFW)(nil)

// NewGLFW creates a new GLFW window with OpenGL context.
func NewGLFW(cfg Config) (*GLFW, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &GLFW{
		config: cfg,
		win:    win,
		queue:  input.NewQueue(),
	}
	w.installCallbacks()

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *GLFW) installCallbacks() {
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.queue.Push(input.Event{Type: input.EventQuit})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue.Push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			w.queue.Push(input.Event{Type: input.EventKeyDown, Key: glfwKey(key)})
		case glfw.Release:
			w.queue.Push(input.Event{Type: input.EventKeyUp, Key: glfwKey(key)})
		}
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.queue.Push(input.Event{Type: input.EventMouseMove, MouseX: x, MouseY: y})
	})
	w.win.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		t := input.EventMouseDown
		if action == glfw.Release {
			t = input.EventMouseUp
		}
		w.queue.Push(input.Event{Type: t, Button: glfwButton(button), MouseX: x, MouseY: y})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.queue.Push(input.Event{Type: input.EventScroll, ScrollX: xoff, ScrollY: yoff})
	})
}

func glfwKey(key glfw.Key) input.Key {
	switch key {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyF1:
		return input.KeyF1
	case glfw.KeyF2:
		return input.KeyF2
	case glfw.KeyF12:
		return input.KeyF12
	default:
		return input.KeyUnknown
	}
}

func glfwButton(b glfw.MouseButton) input.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle
	case glfw.MouseButtonRight:
		return input.ButtonRight
	default:
		return input.ButtonNone
	}
}

// Close destroys the window and terminates GLFW.
func (w *GLFW) Close() {
	logger.Info("closing window")
	if w.win != nil {
		w.win.Destroy()
	}
	glfw.Terminate()
}

// PollEvents processes pending GLFW events and returns them.
func (w *GLFW) PollEvents(dst []input.Event) []input.Event {
	glfw.PollEvents()
	return w.queue.Drain(dst)
}

// SwapBuffers swaps the OpenGL buffers.
func (w *GLFW) SwapBuffers() {
	w.win.SwapBuffers()
}

// Size returns the framebuffer size in pixels.
func (w *GLFW) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

// SetTitle sets the window title.
func (w *GLFW) SetTitle(title string) {
	w.win.SetTitle(title)
}
