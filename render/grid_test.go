package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/sdfpoly/vec/v2"
	"github.com/deadsy/sdfpoly/vec/v3"
)

func TestNewGrid2StepCounts(t *testing.T) {
	g, err := NewGrid2(v2.Vec{}, v2.Vec{X: 10, Y: 3}, v2.Vec{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, g.N.X)
	assert.Equal(t, 3, g.N.Y)
	assert.InDelta(t, 1.0, g.R.X, 1e-9)
}

func TestNewGrid2NonIntegerResolution(t *testing.T) {
	g, err := NewGrid2(v2.Vec{}, v2.Vec{X: 10, Y: 10}, v2.Vec{X: 3, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, g.N.X)
	assert.InDelta(t, 2.5, g.R.X, 1e-9)
	c := g.Corner(4, 0)
	assert.InDelta(t, 10.0, c.X, 1e-9)
}

func TestNewGrid2InvalidResolution(t *testing.T) {
	_, err := NewGrid2(v2.Vec{}, v2.Vec{X: 10, Y: 10}, v2.Vec{X: 0, Y: 1})
	assert.Error(t, err)
}

func TestNewGrid2EmptyRegion(t *testing.T) {
	g, err := NewGrid2(v2.Vec{X: 5, Y: 5}, v2.Vec{X: 5, Y: 5}, v2.Vec{X: 1, Y: 1})
	require.NoError(t, err)
	assert.True(t, g.Empty())
}

func TestNewGrid3StepCounts(t *testing.T) {
	g, err := NewGrid3(v3.Vec{}, v3.Vec{X: 4, Y: 4, Z: 4}, v3.Vec{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, g.N.X)
	assert.Equal(t, 4, g.N.Y)
	assert.Equal(t, 4, g.N.Z)
	assert.False(t, g.Empty())
}
