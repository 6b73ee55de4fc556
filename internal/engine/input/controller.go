package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Default controller settings.
const (
	DefaultRotateSensitivity = 0.001 // turn fractions per pixel
	DefaultScrollSpeed       = 0.5   // world units per scroll step
)

// Camera is the part of the camera the controller drives.
type Camera interface {
	Rotate(deltaPitch, deltaYaw float32)
	Translate(delta mgl32.Vec3)
}

// Settings tunes how raw input maps onto camera motion.
type Settings struct {
	RotateSensitivity float32
	ScrollSpeed       float32
}

// DefaultSettings returns the stock sensitivity values.
func DefaultSettings() Settings {
	return Settings{
		RotateSensitivity: DefaultRotateSensitivity,
		ScrollSpeed:       DefaultScrollSpeed,
	}
}

// Actions are the frame-level requests produced by a Dispatch call.
// Toggles flip on every key press, so two presses in one poll cancel out.
type Actions struct {
	Quit            bool
	ToggleWireframe bool
	ToggleCulling   bool
	Screenshot      bool
	Resized         bool
	Width, Height   int
}

// Controller applies input events to a camera and cursor it holds.
type Controller struct {
	camera   Camera
	cursor   *Cursor
	settings Settings
}

// NewController creates a controller over the given camera and cursor.
func NewController(cam Camera, cursor *Cursor, settings Settings) *Controller {
	return &Controller{
		camera:   cam,
		cursor:   cursor,
		settings: settings,
	}
}

// Cursor returns the cursor driven by this controller.
func (c *Controller) Cursor() *Cursor {
	return c.cursor
}

// Dispatch handles events in order and returns the resulting actions.
// Camera and cursor are mutated before Dispatch returns.
func (c *Controller) Dispatch(events []Event) Actions {
	var a Actions

	for _, e := range events {
		switch e.Type {
		case EventQuit:
			a.Quit = true

		case EventWindowResize:
			a.Resized = true
			a.Width, a.Height = e.Width, e.Height

		case EventKeyDown:
			switch e.Key {
			case KeyEscape:
				a.Quit = true
			case KeyF1:
				a.ToggleWireframe = !a.ToggleWireframe
			case KeyF2:
				a.ToggleCulling = !a.ToggleCulling
			case KeyF12:
				a.Screenshot = true
			}

		case EventMouseMove:
			c.cursor.MoveTo(e.MouseX, e.MouseY)
			if c.cursor.Pressed() {
				dx, dy := c.cursor.Delta()
				s := c.settings.RotateSensitivity
				c.camera.Rotate(float32(dy)*s, float32(dx)*s)
			}

		case EventMouseDown:
			if e.Button == ButtonLeft {
				c.cursor.Press()
			}

		case EventMouseUp:
			if e.Button == ButtonLeft {
				c.cursor.Release()
			}

		case EventScroll:
			c.camera.Translate(mgl32.Vec3{0, 0, -float32(e.ScrollY) * c.settings.ScrollSpeed})
		}
	}

	return a
}
