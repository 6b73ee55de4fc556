// Package mesh generates procedural triangle meshes (box, cylinder, sphere).
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidParameter is returned when a tessellation parameter is out of range.
var ErrInvalidParameter = errors.New("invalid mesh parameter")

// ParameterError describes which shape parameter was rejected.
type ParameterError struct {
	Shape string
	Param string
	Value int
	Min   int
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s must be >= %d, got %d", e.Shape, e.Param, e.Min, e.Value)
}

// Is reports whether target is ErrInvalidParameter.
func (e *ParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// Vertex is a mesh vertex laid out for direct GPU upload (32 bytes).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Mesh holds vertex and triangle index data ready for GPU upload.
// Triangles wind counter-clockwise when seen from outside.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks the index buffer against the vertex buffer.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%s: index count %d is not a multiple of 3", m.Name, len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%s: index %d at position %d out of range (%d vertices)", m.Name, idx, i, n)
		}
	}
	return nil
}

// computeBounds fills m.Bounds from the vertex positions.
func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			if v.Position[k] < b.Min[k] {
				b.Min[k] = v.Position[k]
			}
			if v.Position[k] > b.Max[k] {
				b.Max[k] = v.Position[k]
			}
		}
	}
	m.Bounds = b
}
