// Package lighting holds the scene's light sources.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Attenuation holds the point light falloff coefficients, evaluated in the
// shader as 1 / (Constant + Linear*d + Quadratic*d*d).
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Vec3 packs the coefficients as (constant, linear, quadratic) for upload.
func (a Attenuation) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{a.Constant, a.Linear, a.Quadratic}
}

// DirectionLight is an infinitely distant light.
type DirectionLight struct {
	Color     mgl32.Vec3
	Direction mgl32.Vec3 // direction the light travels in
}

// PointLight is a positional light with distance falloff.
type PointLight struct {
	Color       mgl32.Vec3
	Position    mgl32.Vec3
	Attenuation Attenuation
}

// Lights bundles the single directional and single point light of the scene.
type Lights struct {
	Dir   DirectionLight
	Point PointLight
}
