// Package shading builds the static uniform set of a lit object: model matrix,
// material and light parameters.
package shading

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/shapeview/internal/engine/lighting"
)

// Uniform names shared with the GLSL sources.
const (
	UniformModel           = "model"
	UniformViewProj        = "viewProj"
	UniformCameraPos       = "cameraPos"
	UniformViewPos         = "viewPos"
	UniformColor           = "color"
	UniformKa              = "ka"
	UniformKd              = "kd"
	UniformKs              = "ks"
	UniformAlpha           = "alpha"
	UniformDirLightColor   = "dirLightColor"
	UniformDirLightDir     = "dirLightDir"
	UniformPointLightColor = "pointLightColor"
	UniformPointLightPos   = "pointLightPos"
	UniformAttenuation     = "attenuation"
)

// Surface holds Phong material coefficients.
type Surface struct {
	Ka    float32 // ambient
	Kd    float32 // diffuse
	Ks    float32 // specular
	Alpha float32 // shininess exponent
}

// Transformation places an object in world space. Rotation components are
// turn fractions about X, Y and Z (1.0 is a full turn).
type Transformation struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

// Identity returns a transformation that leaves an object unchanged.
func Identity() Transformation {
	return Transformation{Scale: mgl32.Vec3{1, 1, 1}}
}

// ModelMatrix composes T · (Rz · Ry · Rx) · S.
func (t Transformation) ModelMatrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	rotX := mgl32.HomogRotate3DX(turns(t.Rotation.X()))
	rotY := mgl32.HomogRotate3DY(turns(t.Rotation.Y()))
	rotZ := mgl32.HomogRotate3DZ(turns(t.Rotation.Z()))
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotZ.Mul4(rotY).Mul4(rotX)).Mul4(scale)
}

func turns(f float32) float32 {
	return mgl32.DegToRad(360 * f)
}

// Uniform is a named uniform value. Value is one of float32, int32,
// mgl32.Vec3 or mgl32.Mat4.
type Uniform struct {
	Name  string
	Value any
}

// Params is everything that is static about one drawn object.
type Params struct {
	Transform Transformation
	Surface   Surface
	Color     mgl32.Vec3
	Lights    lighting.Lights
}

// Uniforms returns the object's static uniform set in a fixed order.
func (p Params) Uniforms() []Uniform {
	dir := p.Lights.Dir
	point := p.Lights.Point

	return []Uniform{
		{Name: UniformModel, Value: p.Transform.ModelMatrix()},
		{Name: UniformColor, Value: p.Color},
		{Name: UniformKa, Value: p.Surface.Ka},
		{Name: UniformKd, Value: p.Surface.Kd},
		{Name: UniformKs, Value: p.Surface.Ks},
		{Name: UniformAlpha, Value: p.Surface.Alpha},
		{Name: UniformDirLightColor, Value: dir.Color},
		{Name: UniformDirLightDir, Value: dir.Direction},
		{Name: UniformPointLightColor, Value: point.Color},
		{Name: UniformPointLightPos, Value: point.Position},
		{Name: UniformAttenuation, Value: point.Attenuation.Vec3()},
	}
}
