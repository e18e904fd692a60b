package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deadsy/sdfpoly/vec/v2"
)

func square2(side float64) []Chain2 {
	return []Chain2{
		{{X: 0, Y: 0}, {X: side, Y: 0}},
		{{X: side, Y: 0}, {X: side, Y: side}},
		{{X: side, Y: side}, {X: 0, Y: side}},
		{{X: 0, Y: side}, {X: 0, Y: 0}},
	}
}

func TestStitchLoops2Square(t *testing.T) {
	loops, dropped := stitchLoops2(square2(1.0), 1.0)
	assert.Equal(t, 0, dropped)
	assert.Len(t, loops, 1)
	assert.True(t, loops[0].Closed(1e-9))
	assert.True(t, loops[0].V[0].Equals(v2.Vec{X: 0, Y: 0}, 1e-9))
}

func TestStitchLoops2AnyOrder(t *testing.T) {
	chains := square2(1.0)
	chains[0], chains[2] = chains[2], chains[0]
	loops, dropped := stitchLoops2(chains, 1.0)
	assert.Equal(t, 0, dropped)
	assert.Len(t, loops, 1)
}

func TestStitchLoops2Dangling(t *testing.T) {
	chains := square2(1.0)
	chains = chains[:3] // drop the closing segment
	loops, dropped := stitchLoops2(chains, 1.0)
	assert.Empty(t, loops)
	assert.Equal(t, 1, dropped)
}

func TestStitchLoops2Quantization(t *testing.T) {
	// Endpoints that differ by less than the quantization tolerance still
	// match.
	chains := []Chain2{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 1, Y: 0}, {X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 0, Y: 1}},
		{{X: 0 + 1e-10, Y: 1}, {X: 0, Y: 0}},
	}
	loops, dropped := stitchLoops2(chains, 1.0)
	assert.Equal(t, 0, dropped)
	assert.Len(t, loops, 1)
}
