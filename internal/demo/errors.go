package demo

import "fmt"

// Startup stages.
const (
	StageWindow = "window"
	StageGL     = "opengl"
	StageMesh   = "mesh"
	StageShader = "shader"
)

// StartupError is a fatal failure before the render loop starts.
type StartupError struct {
	Stage string
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}
