package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionRectAdjacentAlongU(t *testing.T) {
	a := Quad3{normal: axisZ, outward: true, plane: 0, uLo: 0, uHi: 1, vLo: 0, vHi: 1}
	b := Quad3{normal: axisZ, outward: true, plane: 0, uLo: 1, uHi: 2, vLo: 0, vHi: 1}
	u, ok := unionRect(a, b, 1e-6)
	require.True(t, ok)
	assert.Equal(t, 0.0, u.uLo)
	assert.Equal(t, 2.0, u.uHi)
	assert.Equal(t, 0.0, u.vLo)
	assert.Equal(t, 1.0, u.vHi)
}

func TestUnionRectNotAdjacent(t *testing.T) {
	a := Quad3{normal: axisZ, outward: true, plane: 0, uLo: 0, uHi: 1, vLo: 0, vHi: 1}
	b := Quad3{normal: axisZ, outward: true, plane: 0, uLo: 5, uHi: 6, vLo: 0, vHi: 1}
	_, ok := unionRect(a, b, 1e-6)
	assert.False(t, ok)
}

func TestUnionRectDifferentPlaneRejected(t *testing.T) {
	a := Quad3{normal: axisZ, outward: true, plane: 0, uLo: 0, uHi: 1, vLo: 0, vHi: 1}
	b := Quad3{normal: axisZ, outward: true, plane: 1, uLo: 1, uHi: 2, vLo: 0, vHi: 1}
	_, ok := unionRect(a, b, 1e-6)
	assert.False(t, ok)
}

func TestMergeQuadsCoalescesStrip(t *testing.T) {
	quads := []Quad3{
		{normal: axisZ, outward: true, plane: 0, uLo: 0, uHi: 1, vLo: 0, vHi: 1},
		{normal: axisZ, outward: true, plane: 0, uLo: 1, uHi: 2, vLo: 0, vHi: 1},
		{normal: axisZ, outward: true, plane: 0, uLo: 2, uHi: 3, vLo: 0, vHi: 1},
	}
	tris := mergeQuads(quads, 1.0)
	// 3 unit quads merge into a single 3x1 quad -> 2 triangles, not 6.
	assert.Len(t, tris, 2)
}

func TestMergeQuadsSeparatePlanesStayDistinct(t *testing.T) {
	quads := []Quad3{
		{normal: axisZ, outward: true, plane: 0, uLo: 0, uHi: 1, vLo: 0, vHi: 1},
		{normal: axisX, outward: true, plane: 0, uLo: 0, uHi: 1, vLo: 0, vHi: 1},
	}
	tris := mergeQuads(quads, 1.0)
	assert.Len(t, tris, 4)
}
