package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareCrossingsNoCrossing(t *testing.T) {
	allOut := [4]bool{false, false, false, false}
	assert.Empty(t, squareCrossings(allOut, false))

	allIn := [4]bool{true, true, true, true}
	assert.Empty(t, squareCrossings(allIn, false))
}

func TestSquareCrossingsSingleCorner(t *testing.T) {
	// corner 0 inside, rest outside: the segment runs from edge0 (bottom)
	// to edge3 (left), keeping corner 0 on its left.
	inside := [4]bool{true, false, false, false}
	pairs := squareCrossings(inside, false)
	assert.Len(t, pairs, 1)
	assert.Equal(t, edgePair{p: 0, q: 3}, pairs[0])
}

func TestSquareCrossingsSaddle(t *testing.T) {
	inside := [4]bool{true, false, true, false}
	assert.True(t, isSaddle(inside))

	withCenter := squareCrossings(inside, true)
	withoutCenter := squareCrossings(inside, false)
	assert.Len(t, withCenter, 2)
	assert.Len(t, withoutCenter, 2)
	assert.NotEqual(t, withCenter, withoutCenter)
}

func TestIsSaddle(t *testing.T) {
	assert.True(t, isSaddle([4]bool{true, false, true, false}))
	assert.False(t, isSaddle([4]bool{true, true, false, false}))
}
