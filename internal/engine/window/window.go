// Package window creates the OS window and OpenGL 4.1 core context and turns
// native events into input events. SDL2 and GLFW backends are available.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Faultbox/shapeview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown window backend")

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
}

// Window is an open window with a current OpenGL context.
type Window interface {
	// PollEvents appends the pending events to dst and returns it.
	PollEvents(dst []input.Event) []input.Event
	SwapBuffers()
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	SetTitle(title string)
	Close()
}

// Open creates a window with the configured backend. The OpenGL context is
// current on the calling thread when Open returns.
func Open(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		return NewSDL(cfg)
	case BackendGLFW:
		return NewGLFW(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
