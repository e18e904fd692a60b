package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/sdfpoly/vec/v2"
)

type circle2 struct {
	r float64
}

func (c *circle2) Evaluate(p v2.Vec) float64 {
	return math.Sqrt(p.X*p.X+p.Y*p.Y) - c.r
}

func TestGetContourCircle(t *testing.T) {
	s := &circle2{r: 5}
	loops, err := GetContour(v2.Vec{X: -6, Y: -6}, v2.Vec{X: 6, Y: 6}, v2.Vec{X: 0.25, Y: 0.25}, s)
	require.NoError(t, err)
	require.Len(t, loops, 1)

	loop := loops[0]
	assert.True(t, loop.Closed(1e-6))
	for _, p := range loop.V {
		r := math.Sqrt(p.X*p.X + p.Y*p.Y)
		assert.InDelta(t, 5.0, r, 0.5)
	}

	// Interior-on-left convention means a CCW traversal, positive area.
	assert.Greater(t, signedArea(loop.V), 0.0)
}

func TestGetContourInvalidResolution(t *testing.T) {
	s := &circle2{r: 5}
	_, err := GetContour(v2.Vec{X: -6, Y: -6}, v2.Vec{X: 6, Y: 6}, v2.Vec{X: 0, Y: 1}, s)
	assert.Error(t, err)
}

func TestGetContourEmptyRegion(t *testing.T) {
	s := &circle2{r: 5}
	loops, err := GetContour(v2.Vec{X: 1, Y: 1}, v2.Vec{X: 1, Y: 1}, v2.Vec{X: 0.25, Y: 0.25}, s)
	require.NoError(t, err)
	assert.Empty(t, loops)
}

func TestGetContourEmptyField(t *testing.T) {
	// A field that never crosses zero in the query region yields no loops.
	s := &circle2{r: 0.01}
	loops, err := GetContour(v2.Vec{X: 5, Y: 5}, v2.Vec{X: 6, Y: 6}, v2.Vec{X: 0.25, Y: 0.25}, s)
	require.NoError(t, err)
	assert.Empty(t, loops)
}
