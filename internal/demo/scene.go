package demo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/config"
	"github.com/Faultbox/shapeview/internal/engine/gpu"
	"github.com/Faultbox/shapeview/internal/engine/lighting"
	"github.com/Faultbox/shapeview/internal/engine/mesh"
	"github.com/Faultbox/shapeview/internal/engine/renderer"
	"github.com/Faultbox/shapeview/internal/engine/shader"
	"github.com/Faultbox/shapeview/internal/engine/shading"
	"github.com/Faultbox/shapeview/internal/logger"
)

// ShaderSource supplies the GLSL sources of a named program.
type ShaderSource interface {
	LoadProgram(name string) (vertexSrc, fragmentSrc string, err error)
}

// ObjectSpec is one configured shape before it is uploaded.
type ObjectSpec struct {
	Name   string
	Mesh   *mesh.Mesh
	Shader string
	Params shading.Params
}

// Lights converts the light sections of cfg.
func Lights(cfg *config.Config) lighting.Lights {
	dl := cfg.DirectionalLight
	pl := cfg.PointLight
	return lighting.Lights{
		Dir: lighting.DirectionLight{
			Color:     mgl32.Vec3{dl.Red, dl.Green, dl.Blue},
			Direction: mgl32.Vec3{dl.DirX, dl.DirY, dl.DirZ},
		},
		Point: lighting.PointLight{
			Color:    mgl32.Vec3{pl.Red, pl.Green, pl.Blue},
			Position: mgl32.Vec3{pl.TransX, pl.TransY, pl.TransZ},
			Attenuation: lighting.Attenuation{
				Constant:  pl.AttenuationConst,
				Linear:    pl.AttenuationLin,
				Quadratic: pl.AttenuationQuad,
			},
		},
	}
}

func objectParams(o config.ObjectConfig, lights lighting.Lights) shading.Params {
	return shading.Params{
		Transform: shading.Transformation{
			Translation: mgl32.Vec3{o.TransX, o.TransY, o.TransZ},
			Rotation:    mgl32.Vec3{o.RotX, o.RotY, o.RotZ},
			Scale:       mgl32.Vec3{o.ScaleX, o.ScaleY, o.ScaleZ},
		},
		Surface: shading.Surface{Ka: o.Ka, Kd: o.Kd, Ks: o.Ks, Alpha: o.Alpha},
		Color:   mgl32.Vec3{o.Red, o.Green, o.Blue},
		Lights:  lights,
	}
}

// Objects generates the meshes of the enabled shapes in draw order: box,
// cylinder, sphere.
func Objects(cfg *config.Config) ([]ObjectSpec, error) {
	lights := Lights(cfg)
	var specs []ObjectSpec

	if b := cfg.Box; b.Enabled {
		specs = append(specs, ObjectSpec{
			Name:   "box",
			Mesh:   mesh.Box(b.Width, b.Height, b.Depth),
			Shader: b.Shader,
			Params: objectParams(b.ObjectConfig, lights),
		})
	}

	if c := cfg.Cylinder; c.Enabled {
		m, err := mesh.Cylinder(c.Height, c.Radius, c.Sides)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ObjectSpec{
			Name:   "cylinder",
			Mesh:   m,
			Shader: c.Shader,
			Params: objectParams(c.ObjectConfig, lights),
		})
	}

	if s := cfg.Sphere; s.Enabled {
		m, err := mesh.Sphere(s.LongSegments, s.LatSegments, s.Radius)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ObjectSpec{
			Name:   "sphere",
			Mesh:   m,
			Shader: s.Shader,
			Params: objectParams(s.ObjectConfig, lights),
		})
	}

	return specs, nil
}

// buildScene uploads every object and builds its program. Objects added
// before a failure stay in r, so closing r releases them.
func buildScene(dev gpu.Device, shaders ShaderSource, cfg *config.Config, r *renderer.Renderer) error {
	specs, err := Objects(cfg)
	if err != nil {
		return &StartupError{Stage: StageMesh, Err: err}
	}

	for _, spec := range specs {
		vs, fs, err := shaders.LoadProgram(spec.Shader)
		if err != nil {
			return &StartupError{Stage: StageShader, Err: fmt.Errorf("%s: %w", spec.Name, err)}
		}

		prog, err := shader.Build(dev, spec.Name+"/"+spec.Shader, vs, fs, spec.Params)
		if err != nil {
			return &StartupError{Stage: StageShader, Err: err}
		}

		buffers, err := dev.UploadMesh(spec.Mesh)
		if err != nil {
			prog.Delete()
			return &StartupError{Stage: StageMesh, Err: err}
		}

		r.Add(renderer.Object{Name: spec.Name, Program: prog, Buffers: buffers})

		logger.Info("object ready",
			zap.String("object", spec.Name),
			zap.String("shader", spec.Shader),
			zap.Int("vertices", len(spec.Mesh.Vertices)),
			zap.Int("triangles", spec.Mesh.TriangleCount()),
		)
	}
	return nil
}
