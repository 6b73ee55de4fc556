// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all demo settings.
type Config struct {
	Window           WindowConfig           `yaml:"window"`
	Camera           CameraConfig           `yaml:"camera"`
	Input            InputConfig            `yaml:"input"`
	Box              BoxConfig              `yaml:"box"`
	Cylinder         CylinderConfig         `yaml:"cylinder"`
	Sphere           SphereConfig           `yaml:"sphere"`
	DirectionalLight DirectionalLightConfig `yaml:"directionalLight"`
	PointLight       PointLightConfig       `yaml:"pointLight"`
	Shaders          ShadersConfig          `yaml:"shaders"`
	Screenshot       ScreenshotConfig       `yaml:"screenshot"`
	Logging          LoggingConfig          `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the projection and the start position.
type CameraConfig struct {
	FOV    float32 `yaml:"fov"` // degrees
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	TransX float32 `yaml:"transX"`
	TransY float32 `yaml:"transY"`
	TransZ float32 `yaml:"transZ"`
}

// InputConfig holds mouse sensitivity.
type InputConfig struct {
	RotateSensitivity float32 `yaml:"rotateSensitivity"` // turns per pixel
	ScrollSpeed       float32 `yaml:"scrollSpeed"`       // units per wheel step
}

// ObjectConfig holds the placement, material and color of one shape.
// Rotations are turn fractions (1.0 is a full turn).
type ObjectConfig struct {
	Enabled bool   `yaml:"enabled"`
	Shader  string `yaml:"shader"` // "phong" or "gouraud"

	TransX float32 `yaml:"transX"`
	TransY float32 `yaml:"transY"`
	TransZ float32 `yaml:"transZ"`
	RotX   float32 `yaml:"rotX"`
	RotY   float32 `yaml:"rotY"`
	RotZ   float32 `yaml:"rotZ"`
	ScaleX float32 `yaml:"scaleX"`
	ScaleY float32 `yaml:"scaleY"`
	ScaleZ float32 `yaml:"scaleZ"`

	Red   float32 `yaml:"red"`
	Green float32 `yaml:"green"`
	Blue  float32 `yaml:"blue"`

	Ka    float32 `yaml:"ka"`
	Kd    float32 `yaml:"kd"`
	Ks    float32 `yaml:"ks"`
	Alpha float32 `yaml:"alpha"`
}

// BoxConfig holds box dimensions.
type BoxConfig struct {
	Width        float32 `yaml:"width"`
	Height       float32 `yaml:"height"`
	Depth        float32 `yaml:"depth"`
	ObjectConfig `yaml:",inline"`
}

// CylinderConfig holds cylinder dimensions.
type CylinderConfig struct {
	Height       float32 `yaml:"height"`
	Radius       float32 `yaml:"radius"`
	Sides        int     `yaml:"sides"`
	ObjectConfig `yaml:",inline"`
}

// SphereConfig holds sphere tessellation.
type SphereConfig struct {
	LongSegments int     `yaml:"longSegments"`
	LatSegments  int     `yaml:"latSegments"`
	Radius       float32 `yaml:"radius"`
	ObjectConfig `yaml:",inline"`
}

// DirectionalLightConfig holds the sun-like light.
type DirectionalLightConfig struct {
	Red   float32 `yaml:"red"`
	Green float32 `yaml:"green"`
	Blue  float32 `yaml:"blue"`
	DirX  float32 `yaml:"dirX"`
	DirY  float32 `yaml:"dirY"`
	DirZ  float32 `yaml:"dirZ"`
}

// PointLightConfig holds the point light.
type PointLightConfig struct {
	Red              float32 `yaml:"red"`
	Green            float32 `yaml:"green"`
	Blue             float32 `yaml:"blue"`
	TransX           float32 `yaml:"transX"`
	TransY           float32 `yaml:"transY"`
	TransZ           float32 `yaml:"transZ"`
	AttenuationConst float32 `yaml:"attenuationConst"`
	AttenuationLin   float32 `yaml:"attenuationLin"`
	AttenuationQuad  float32 `yaml:"attenuationQuad"`
}

// ShadersConfig holds where shader sources are read from.
type ShadersConfig struct {
	Dir string `yaml:"dir"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"file"`
}

func object(shader string, x, y, z, r, g, b float32) ObjectConfig {
	return ObjectConfig{
		Enabled: true,
		Shader:  shader,
		TransX:  x,
		TransY:  y,
		TransZ:  z,
		ScaleX:  1,
		ScaleY:  1,
		ScaleZ:  1,
		Red:     r,
		Green:   g,
		Blue:    b,
		Ka:      0.05,
		Kd:      0.8,
		Ks:      0.5,
		Alpha:   10,
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   800,
			Height:  800,
			Title:   "ECG",
			Backend: "sdl",
			VSync:   true,
		},
		Camera: CameraConfig{
			FOV:    60,
			Near:   0.1,
			Far:    100,
			TransZ: 6,
		},
		Input: InputConfig{
			RotateSensitivity: 0.001,
			ScrollSpeed:       0.5,
		},
		Box: BoxConfig{
			Width:        1.2,
			Height:       1.2,
			Depth:        1.2,
			ObjectConfig: object("phong", -1.5, -1, 0, 0.8, 0.1, 0.1),
		},
		Cylinder: CylinderConfig{
			Height:       1.3,
			Radius:       0.6,
			Sides:        16,
			ObjectConfig: object("gouraud", 1.5, -1, 0, 0.1, 0.7, 0.2),
		},
		Sphere: SphereConfig{
			LongSegments: 32,
			LatSegments:  16,
			Radius:       0.8,
			ObjectConfig: object("phong", 0, 1, 0, 0.1, 0.3, 0.9),
		},
		DirectionalLight: DirectionalLightConfig{
			Red:   0.8,
			Green: 0.8,
			Blue:  0.8,
			DirX:  0,
			DirY:  -1,
			DirZ:  -1,
		},
		PointLight: PointLightConfig{
			Red:              1,
			Green:            1,
			Blue:             1,
			AttenuationConst: 1,
			AttenuationLin:   0.4,
			AttenuationQuad:  0.1,
		},
		Shaders: ShadersConfig{
			Dir: "assets/shaders",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "shapeview",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the demo cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d: must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%g far=%g: need 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %g: must be in (0, 180)", c.Camera.FOV))
	}
	return errors.Join(errs...)
}
