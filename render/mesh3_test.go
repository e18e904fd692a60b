package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/sdfpoly/vec/v3"
)

type sphere3 struct {
	r float64
}

func (s *sphere3) Evaluate(p v3.Vec) float64 {
	return p.Length() - s.r
}

func TestGetMeshSphere(t *testing.T) {
	s := &sphere3{r: 4}
	res := v3.Vec{X: 0.5, Y: 0.5, Z: 0.5}
	tris, err := GetMesh(v3.Vec{X: -5, Y: -5, Z: -5}, v3.Vec{X: 5, Y: 5, Z: 5}, res, s)
	require.NoError(t, err)
	require.NotEmpty(t, tris)

	for _, tr := range tris {
		assert.False(t, tr.Degenerate(1e-9))
		for _, v := range tr.V {
			r := v.Length()
			assert.InDelta(t, 4.0, r, 0.75)
		}
	}
}

func TestGetMeshInvalidResolution(t *testing.T) {
	s := &sphere3{r: 4}
	_, err := GetMesh(v3.Vec{X: -5, Y: -5, Z: -5}, v3.Vec{X: 5, Y: 5, Z: 5}, v3.Vec{X: -1, Y: 0.5, Z: 0.5}, s)
	assert.Error(t, err)
}

func TestGetMeshEmptyRegion(t *testing.T) {
	s := &sphere3{r: 4}
	tris, err := GetMesh(v3.Vec{X: 1, Y: 1, Z: 1}, v3.Vec{X: 1, Y: 1, Z: 1}, v3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, s)
	require.NoError(t, err)
	assert.Empty(t, tris)
}

// TestGetMeshFlatBoxFace exercises the quad-merge fast path: a cube's flat
// faces should produce large coplanar quads that coalesce, not one
// triangle pair per cell.
func TestGetMeshFlatBoxFace(t *testing.T) {
	half := v3.Vec{X: 4, Y: 4, Z: 4}
	box := boxSDF{half: half}
	res := v3.Vec{X: 1, Y: 1, Z: 1}
	tris, err := GetMesh(v3.Vec{}.Sub(half).Sub(v3.Vec{X: 1, Y: 1, Z: 1}), v3.Vec{}.Add(half).Add(v3.Vec{X: 1, Y: 1, Z: 1}), res, box)
	require.NoError(t, err)
	require.NotEmpty(t, tris)
	for _, tr := range tris {
		assert.False(t, tr.Degenerate(1e-9))
	}
}

type boxSDF struct {
	half v3.Vec
}

func (b boxSDF) Evaluate(p v3.Vec) float64 {
	qx := math.Abs(p.X) - b.half.X
	qy := math.Abs(p.Y) - b.half.Y
	qz := math.Abs(p.Z) - b.half.Z
	ax, ay, az := math.Max(qx, 0), math.Max(qy, 0), math.Max(qz, 0)
	outside := math.Sqrt(ax*ax + ay*ay + az*az)
	inside := math.Min(math.Max(qx, math.Max(qy, qz)), 0)
	return outside + inside
}
