package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/sdfpoly/vec/v3"
)

func TestTessellateLoop3Rectangle(t *testing.T) {
	loop := loop3{V: []v3.Vec{
		{X: 0, Y: 0, Z: 5}, {X: 1, Y: 0, Z: 5}, {X: 1, Y: 1, Z: 5}, {X: 0, Y: 1, Z: 5}, {X: 0, Y: 0, Z: 5},
	}}
	quads, tris := tessellateLoop3(loop, 1.0)
	require.Len(t, quads, 1)
	assert.Empty(t, tris)
	assert.Equal(t, axisZ, quads[0].normal)
	assert.InDelta(t, 5.0, quads[0].plane, 1e-9)
}

func TestTessellateLoop3Triangle(t *testing.T) {
	loop := loop3{V: []v3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 0},
	}}
	quads, tris := tessellateLoop3(loop, 1.0)
	assert.Empty(t, quads)
	require.Len(t, tris, 1)
	assert.False(t, tris[0].Degenerate(1e-9))
}

func TestTessellateLoop3Pentagon(t *testing.T) {
	loop := loop3{V: []v3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 2, Y: 1, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 0},
	}}
	quads, tris := tessellateLoop3(loop, 1.0)
	assert.Empty(t, quads)
	assert.Len(t, tris, 3)
}

func TestQuad3Triangles(t *testing.T) {
	q := Quad3{normal: axisZ, outward: true, plane: 0, uLo: 0, uHi: 1, vLo: 0, vHi: 1}
	tris := q.Triangles()
	assert.Len(t, tris, 2)
	for _, tr := range tris {
		assert.False(t, tr.Degenerate(1e-9))
	}
}
