// Package camera provides the arcball-style demo camera.
//
// Rotations are stored as turn fractions (1.0 is one full turn). The camera's
// world transform is Ry(yaw) · Rx(pitch) · translation, so translations are
// applied in the rotated frame and rotating swings the camera around the
// world origin.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in turn fractions. 1.0 is level; the bounds are straight up
// and straight down.
const (
	MinPitch = 0.75
	MaxPitch = 1.25

	// pitchGap keeps pitch strictly inside (MinPitch, MaxPitch).
	pitchGap = 0.001
)

// DefaultPosition is the starting translation when Options.Position is unset.
var DefaultPosition = mgl32.Vec3{0, 0, 6}

// Options configures a new Camera.
type Options struct {
	FOV      float32 // vertical field of view, degrees
	Width    int
	Height   int
	Near     float32
	Far      float32
	Position *mgl32.Vec3 // nil means DefaultPosition
}

// Camera owns a fixed projection and a mutable view.
// ViewProj and EyePosition are recomputed eagerly on every mutation.
type Camera struct {
	projection  mgl32.Mat4
	translation mgl32.Mat4
	pitch, yaw  float32

	view     mgl32.Mat4
	viewProj mgl32.Mat4
	eye      mgl32.Vec3
}

// New creates a camera looking down -Z from its start position.
func New(opts Options) *Camera {
	aspect := float32(1)
	if opts.Height > 0 {
		aspect = float32(opts.Width) / float32(opts.Height)
	}

	pos := DefaultPosition
	if opts.Position != nil {
		pos = *opts.Position
	}

	c := &Camera{
		projection:  mgl32.Perspective(mgl32.DegToRad(opts.FOV), aspect, opts.Near, opts.Far),
		translation: mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()),
		pitch:       1,
		yaw:         1,
	}
	c.update()
	return c
}

// Translate moves the camera by delta in its own rotated frame.
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.translation = c.translation.Mul4(mgl32.Translate3D(delta.X(), delta.Y(), delta.Z()))
	c.update()
}

// Rotate adds to pitch (about X) and yaw (about Y), both in turn fractions.
// Pitch is kept strictly between MinPitch and MaxPitch.
func (c *Camera) Rotate(deltaPitch, deltaYaw float32) {
	c.pitch += deltaPitch
	c.yaw += deltaYaw

	if c.pitch >= MaxPitch {
		c.pitch = MaxPitch - pitchGap
	}
	if c.pitch <= MinPitch {
		c.pitch = MinPitch + pitchGap
	}

	c.update()
}

// ViewProj returns the cached projection · view matrix.
func (c *Camera) ViewProj() mgl32.Mat4 {
	return c.viewProj
}

// View returns the cached view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return c.view
}

// Projection returns the constant projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// EyePosition returns the camera center in world space.
func (c *Camera) EyePosition() mgl32.Vec3 {
	return c.eye
}

// Pitch returns the pitch turn fraction.
func (c *Camera) Pitch() float32 {
	return c.pitch
}

// Yaw returns the yaw turn fraction.
func (c *Camera) Yaw() float32 {
	return c.yaw
}

func (c *Camera) update() {
	rotX := mgl32.HomogRotate3DX(turnsToRadians(c.pitch))
	rotY := mgl32.HomogRotate3DY(turnsToRadians(c.yaw))

	world := rotY.Mul4(rotX).Mul4(c.translation)
	c.view = world.Inv()
	c.viewProj = c.projection.Mul4(c.view)
	c.eye = world.Col(3).Vec3()
}

func turnsToRadians(turns float32) float32 {
	return mgl32.DegToRad(360 * turns)
}
