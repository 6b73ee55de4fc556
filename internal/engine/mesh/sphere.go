package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere builds a UV sphere centered at the origin.
//
// Vertex 0 is the north pole (+Y) and vertex 1 the south pole. They are
// followed by latSegments-1 rings of longSegments vertices each, from north to
// south. Rings are joined by quad strips and each pole by a triangle fan.
func Sphere(longSegments, latSegments int, radius float32) (*Mesh, error) {
	if longSegments < 3 {
		return nil, &ParameterError{Shape: "sphere", Param: "longSegments", Value: longSegments, Min: 3}
	}
	if latSegments < 2 {
		return nil, &ParameterError{Shape: "sphere", Param: "latSegments", Value: latSegments, Min: 2}
	}

	rings := latSegments - 1
	m := &Mesh{
		Name:     "sphere",
		Vertices: make([]Vertex, 0, 2+rings*longSegments),
		Indices:  make([]uint32, 0, 6*longSegments*(latSegments-1)),
	}
	m.Vertices = append(m.Vertices,
		Vertex{Position: mgl32.Vec3{0, radius, 0}, Normal: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{0.5, 0}},
		Vertex{Position: mgl32.Vec3{0, -radius, 0}, Normal: mgl32.Vec3{0, -1, 0}, TexCoord: mgl32.Vec2{0.5, 1}},
	)

	for j := 1; j < latSegments; j++ {
		polar := float32(j) * math32.Pi / float32(latSegments)
		sinPolar, cosPolar := math32.Sin(polar), math32.Cos(polar)
		for i := 0; i < longSegments; i++ {
			azimuth := float32(i) * 2 * math32.Pi / float32(longSegments)
			dir := mgl32.Vec3{
				sinPolar * math32.Cos(azimuth),
				cosPolar,
				sinPolar * math32.Sin(azimuth),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: dir.Mul(radius),
				Normal:   dir,
				TexCoord: mgl32.Vec2{azimuth / (2 * math32.Pi), polar / math32.Pi},
			})
		}
	}

	ring := func(r, i int) uint32 {
		return uint32(2 + r*longSegments + i%longSegments)
	}

	for r := 0; r < rings-1; r++ {
		for i := 0; i < longSegments; i++ {
			m.Indices = append(m.Indices,
				ring(r, i), ring(r, i+1), ring(r+1, i),
				ring(r+1, i+1), ring(r+1, i), ring(r, i+1),
			)
		}
	}

	last := rings - 1
	for i := 0; i < longSegments; i++ {
		m.Indices = append(m.Indices, 0, ring(0, i+1), ring(0, i))
	}
	for i := 0; i < longSegments; i++ {
		m.Indices = append(m.Indices, 1, ring(last, i), ring(last, i+1))
	}

	m.computeBounds()
	return m, nil
}
