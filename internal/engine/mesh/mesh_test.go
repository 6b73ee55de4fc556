package mesh

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOutwardWinding checks that every triangle of a convex mesh centered at
// the origin faces away from the origin.
func assertOutwardWinding(t *testing.T, m *Mesh) {
	t.Helper()
	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Vertices[m.Indices[tri*3]].Position
		b := m.Vertices[m.Indices[tri*3+1]].Position
		c := m.Vertices[m.Indices[tri*3+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Fatalf("%s: triangle %d winds inward (normal %v, centroid %v)", m.Name, tri, n, centroid)
		}
	}
}

func assertVecNear(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], delta, "component %d of %v (want %v)", k, got, want)
	}
}

func assertDistinctTriangleIndices(t *testing.T, m *Mesh) {
	t.Helper()
	for tri := 0; tri < m.TriangleCount(); tri++ {
		i0, i1, i2 := m.Indices[tri*3], m.Indices[tri*3+1], m.Indices[tri*3+2]
		if i0 == i1 || i1 == i2 || i0 == i2 {
			t.Fatalf("%s: triangle %d repeats an index: %d %d %d", m.Name, tri, i0, i1, i2)
		}
	}
}

func TestBox(t *testing.T) {
	m := Box(2, 1, 1)

	require.NoError(t, m.Validate())
	assert.Len(t, m.Vertices, 24)
	assert.Len(t, m.Indices, 36)
	assert.Equal(t, 12, m.TriangleCount())

	for _, v := range m.Vertices {
		assert.InDelta(t, 0, v.Position.X(), 1.0+1e-6)
		assert.InDelta(t, 0, v.Position.Y(), 0.5+1e-6)
		assert.InDelta(t, 0, v.Position.Z(), 0.5+1e-6)
		assert.InDelta(t, 1, v.Normal.Len(), 1e-6)
	}
	assert.Equal(t, mgl32.Vec3{-1, -0.5, -0.5}, m.Bounds.Min)
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0.5}, m.Bounds.Max)

	assertOutwardWinding(t, m)
	assertDistinctTriangleIndices(t, m)
}

func TestBoxFaceNormalsMatchWinding(t *testing.T) {
	m := Box(1, 2, 3)
	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Vertices[m.Indices[tri*3]]
		b := m.Vertices[m.Indices[tri*3+1]]
		c := m.Vertices[m.Indices[tri*3+2]]
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position)).Normalize()
		assertVecNear(t, a.Normal, n, 1e-6)
	}
}

func TestBoxDegenerate(t *testing.T) {
	m := Box(0, 0, 0)
	require.NoError(t, m.Validate())
	assert.Len(t, m.Vertices, 24)
	for _, v := range m.Vertices {
		assert.Equal(t, mgl32.Vec3{}, v.Position)
	}
}

func TestCylinder(t *testing.T) {
	for _, sides := range []int{3, 4, 7, 16, 64} {
		t.Run(fmt.Sprintf("sides=%d", sides), func(t *testing.T) {
			m, err := Cylinder(2, 0.5, sides)
			require.NoError(t, err)
			require.NoError(t, m.Validate())

			assert.Len(t, m.Vertices, 2+4*sides)
			assert.Len(t, m.Indices, 12*sides)
			for _, idx := range m.Indices {
				assert.Less(t, int(idx), len(m.Vertices))
			}
			assertDistinctTriangleIndices(t, m)
			assertOutwardWinding(t, m)

			assert.InDelta(t, 1, m.Bounds.Max.Y(), 1e-6)
			assert.InDelta(t, -1, m.Bounds.Min.Y(), 1e-6)
		})
	}
}

func TestCylinderNormals(t *testing.T) {
	m, err := Cylinder(1, 2, 8)
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Vertices[0].Normal)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, m.Vertices[1].Normal)
	for i := 0; i < 8; i++ {
		topCap := m.Vertices[cylinderRimVertex(i, rimTopCap)]
		side := m.Vertices[cylinderRimVertex(i, rimTopSide)]
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, topCap.Normal)
		assert.Equal(t, topCap.Position, side.Position)
		assert.InDelta(t, 0, side.Normal.Y(), 1e-6)
		assert.InDelta(t, 1, side.Normal.Len(), 1e-6)
	}
}

func TestCylinderInvalidSides(t *testing.T) {
	for _, sides := range []int{-1, 0, 1, 2} {
		_, err := Cylinder(1, 1, sides)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidParameter)

		var perr *ParameterError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "sides", perr.Param)
		assert.Equal(t, sides, perr.Value)
	}
}

func TestSphere(t *testing.T) {
	tests := []struct {
		long, lat int
	}{
		{3, 2},
		{3, 3},
		{8, 4},
		{16, 9},
		{64, 32},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.long, tt.lat), func(t *testing.T) {
			m, err := Sphere(tt.long, tt.lat, 1.5)
			require.NoError(t, err)
			require.NoError(t, m.Validate())

			wantVerts := 2 + (tt.lat-1)*tt.long
			wantTris := 2*tt.long*(tt.lat-2) + 2*tt.long
			assert.Len(t, m.Vertices, wantVerts)
			assert.Equal(t, wantTris, m.TriangleCount())

			for _, v := range m.Vertices {
				assert.InDelta(t, 1.5, v.Position.Len(), 1e-5)
				assert.InDelta(t, 1, v.Normal.Len(), 1e-5)
			}
			assertDistinctTriangleIndices(t, m)
			assertOutwardWinding(t, m)
		})
	}
}

func TestSphereRingSampling(t *testing.T) {
	m, err := Sphere(4, 2, 1)
	require.NoError(t, err)

	// One equatorial ring at azimuth 0, 90, 180, 270 degrees.
	want := []mgl32.Vec3{{1, 0, 0}, {0, 0, 1}, {-1, 0, 0}, {0, 0, -1}}
	for i, w := range want {
		assertVecNear(t, w, m.Vertices[2+i].Position, 1e-6)
	}
}

func TestSphereInvalidSegments(t *testing.T) {
	_, err := Sphere(2, 8, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Sphere(8, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Sphere(0, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSphereZeroRadiusKeepsNormals(t *testing.T) {
	m, err := Sphere(6, 4, 0)
	require.NoError(t, err)
	for _, v := range m.Vertices {
		assert.Equal(t, mgl32.Vec3{}, v.Position)
		assert.InDelta(t, 1, v.Normal.Len(), 1e-5)
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	a, err := Sphere(12, 6, 1)
	require.NoError(t, err)
	b, err := Sphere(12, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Cylinder(1, 1, 9)
	require.NoError(t, err)
	d, err := Cylinder(1, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, c, d)

	assert.Equal(t, Box(1, 2, 3), Box(1, 2, 3))
}

func TestValidate(t *testing.T) {
	m := &Mesh{Name: "bad", Vertices: make([]Vertex, 3), Indices: []uint32{0, 1, 3}}
	assert.Error(t, m.Validate())

	m.Indices = []uint32{0, 1}
	assert.Error(t, m.Validate())

	m.Indices = []uint32{0, 1, 2}
	assert.NoError(t, m.Validate())
}
