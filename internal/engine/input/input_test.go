package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCamera struct {
	rotations    [][2]float32
	translations []mgl32.Vec3
}

func (r *recordingCamera) Rotate(deltaPitch, deltaYaw float32) {
	r.rotations = append(r.rotations, [2]float32{deltaPitch, deltaYaw})
}

func (r *recordingCamera) Translate(delta mgl32.Vec3) {
	r.translations = append(r.translations, delta)
}

func TestCursorFirstMoveZeroDelta(t *testing.T) {
	c := NewCursor()
	c.MoveTo(120, 45)

	dx, dy := c.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	x, y := c.Position()
	assert.Equal(t, 120.0, x)
	assert.Equal(t, 45.0, y)
}

func TestCursorDeltaIsLastMinusNew(t *testing.T) {
	c := NewCursor()
	c.MoveTo(100, 100)
	c.MoveTo(90, 130)

	dx, dy := c.Delta()
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, -30.0, dy)

	c.MoveTo(90, 130)
	dx, dy = c.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestCursorPress(t *testing.T) {
	c := NewCursor()
	assert.False(t, c.Pressed())
	c.Press()
	assert.True(t, c.Pressed())
	c.Release()
	assert.False(t, c.Pressed())
}

func TestQueueDrain(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventKeyDown, Key: KeyF1})
	q.Push(Event{Type: EventQuit})
	require.Equal(t, 2, q.Len())

	got := q.Drain(nil)
	assert.Len(t, got, 2)
	assert.Equal(t, EventQuit, got[1].Type)
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Drain(nil))
}

func TestControllerRotatesOnlyWhilePressed(t *testing.T) {
	cam := &recordingCamera{}
	ctrl := NewController(cam, NewCursor(), DefaultSettings())

	ctrl.Dispatch([]Event{
		{Type: EventMouseMove, MouseX: 10, MouseY: 10},
		{Type: EventMouseMove, MouseX: 20, MouseY: 20},
	})
	assert.Empty(t, cam.rotations)

	ctrl.Dispatch([]Event{
		{Type: EventMouseDown, Button: ButtonLeft},
		{Type: EventMouseMove, MouseX: 10, MouseY: 40},
		{Type: EventMouseUp, Button: ButtonLeft},
		{Type: EventMouseMove, MouseX: 0, MouseY: 0},
	})

	require.Len(t, cam.rotations, 1)
	// delta = last - new = (20-10, 20-40) = (10, -20)
	assert.InDelta(t, -20*DefaultRotateSensitivity, cam.rotations[0][0], 1e-7)
	assert.InDelta(t, 10*DefaultRotateSensitivity, cam.rotations[0][1], 1e-7)
}

func TestControllerIgnoresOtherButtons(t *testing.T) {
	cursor := NewCursor()
	ctrl := NewController(&recordingCamera{}, cursor, DefaultSettings())

	ctrl.Dispatch([]Event{{Type: EventMouseDown, Button: ButtonRight}})
	assert.False(t, cursor.Pressed())

	ctrl.Dispatch([]Event{{Type: EventMouseDown, Button: ButtonLeft}})
	ctrl.Dispatch([]Event{{Type: EventMouseUp, Button: ButtonMiddle}})
	assert.True(t, cursor.Pressed())
}

func TestControllerScrollDollies(t *testing.T) {
	cam := &recordingCamera{}
	ctrl := NewController(cam, NewCursor(), Settings{RotateSensitivity: 0.001, ScrollSpeed: 2})

	ctrl.Dispatch([]Event{{Type: EventScroll, ScrollY: 1.5}})

	require.Len(t, cam.translations, 1)
	assert.Equal(t, mgl32.Vec3{0, 0, -3}, cam.translations[0])
}

func TestControllerActions(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   Actions
	}{
		{
			name:   "escape quits",
			events: []Event{{Type: EventKeyDown, Key: KeyEscape}},
			want:   Actions{Quit: true},
		},
		{
			name:   "window close quits",
			events: []Event{{Type: EventQuit}},
			want:   Actions{Quit: true},
		},
		{
			name:   "f1 toggles wireframe",
			events: []Event{{Type: EventKeyDown, Key: KeyF1}},
			want:   Actions{ToggleWireframe: true},
		},
		{
			name:   "double f1 cancels",
			events: []Event{{Type: EventKeyDown, Key: KeyF1}, {Type: EventKeyDown, Key: KeyF1}},
			want:   Actions{},
		},
		{
			name:   "f2 toggles culling",
			events: []Event{{Type: EventKeyDown, Key: KeyF2}},
			want:   Actions{ToggleCulling: true},
		},
		{
			name:   "f12 screenshot",
			events: []Event{{Type: EventKeyDown, Key: KeyF12}},
			want:   Actions{Screenshot: true},
		},
		{
			name:   "key up ignored",
			events: []Event{{Type: EventKeyUp, Key: KeyEscape}, {Type: EventKeyDown, Key: KeyUnknown}},
			want:   Actions{},
		},
		{
			name:   "resize keeps last size",
			events: []Event{{Type: EventWindowResize, Width: 640, Height: 480}, {Type: EventWindowResize, Width: 1024, Height: 768}},
			want:   Actions{Resized: true, Width: 1024, Height: 768},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewController(&recordingCamera{}, NewCursor(), DefaultSettings())
			assert.Equal(t, tt.want, ctrl.Dispatch(tt.events))
		})
	}
}
