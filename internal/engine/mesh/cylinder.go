package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Per-side vertex slots, relative to cylinderRimVertex(i, 0).
const (
	rimTopCap = iota
	rimBottomCap
	rimTopSide
	rimBottomSide
	rimSlots
)

// Cylinder builds a Y-aligned cylinder centered at the origin with flat caps.
//
// Vertex 0 is the top center and vertex 1 the bottom center. Every side i then
// contributes four vertices: the top and bottom rim points carrying the cap
// normals, and the same two points carrying the radial side normal, so caps
// stay flat while the side is smooth.
func Cylinder(height, radius float32, sides int) (*Mesh, error) {
	if sides < 3 {
		return nil, &ParameterError{Shape: "cylinder", Param: "sides", Value: sides, Min: 3}
	}

	top := height / 2
	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}

	m := &Mesh{
		Name:     "cylinder",
		Vertices: make([]Vertex, 0, 2+rimSlots*sides),
		Indices:  make([]uint32, 0, 12*sides),
	}
	m.Vertices = append(m.Vertices,
		Vertex{Position: mgl32.Vec3{0, top, 0}, Normal: up, TexCoord: mgl32.Vec2{0.5, 0.5}},
		Vertex{Position: mgl32.Vec3{0, -top, 0}, Normal: down, TexCoord: mgl32.Vec2{0.5, 0.5}},
	)

	for i := 0; i < sides; i++ {
		angle := float32(i) * 2 * math32.Pi / float32(sides)
		xUnit, zUnit := math32.Sin(angle), math32.Cos(angle)
		x, z := xUnit*radius, zUnit*radius

		capUV := mgl32.Vec2{(xUnit + 1) / 2, (zUnit + 1) / 2}
		sideU := math32.Mod(float32(i)/float32(sides)+0.5, 1)
		side := mgl32.Vec3{xUnit, 0, zUnit}

		m.Vertices = append(m.Vertices,
			Vertex{Position: mgl32.Vec3{x, top, z}, Normal: up, TexCoord: capUV},
			Vertex{Position: mgl32.Vec3{x, -top, z}, Normal: down, TexCoord: capUV},
			Vertex{Position: mgl32.Vec3{x, top, z}, Normal: side, TexCoord: mgl32.Vec2{sideU, 1}},
			Vertex{Position: mgl32.Vec3{x, -top, z}, Normal: side, TexCoord: mgl32.Vec2{sideU, 0}},
		)

		next := (i + 1) % sides
		m.Indices = append(m.Indices,
			// top cap
			0, cylinderRimVertex(i, rimTopCap), cylinderRimVertex(next, rimTopCap),
			// bottom cap
			1, cylinderRimVertex(next, rimBottomCap), cylinderRimVertex(i, rimBottomCap),
			// side
			cylinderRimVertex(i, rimTopSide), cylinderRimVertex(i, rimBottomSide), cylinderRimVertex(next, rimTopSide),
			cylinderRimVertex(next, rimBottomSide), cylinderRimVertex(next, rimTopSide), cylinderRimVertex(i, rimBottomSide),
		)
	}

	m.computeBounds()
	return m, nil
}

// cylinderRimVertex returns the index of slot on side i.
func cylinderRimVertex(i, slot int) uint32 {
	return uint32(2 + rimSlots*i + slot)
}
