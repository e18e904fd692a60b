package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolateLinear(t *testing.T) {
	g := func(x float64) float64 { return x - 0.5 }
	got := Interpolate(0, g(0), 1, g(1), g, 1)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestInterpolateNoCrossingReturnsA(t *testing.T) {
	g := func(x float64) float64 { return x + 1 }
	got := Interpolate(0, g(0), 1, g(1), g, 1)
	assert.Equal(t, 0.0, got)
}

func TestInterpolateExactEndpoints(t *testing.T) {
	g := func(x float64) float64 { return x }
	assert.Equal(t, 0.0, Interpolate(0, 0, 1, 1, g, 1))
	assert.Equal(t, 1.0, Interpolate(0, -1, 1, 0, g, 1))
}

func TestInterpolateNearTangent(t *testing.T) {
	// A field that is nearly flat near its root: secant alone converges
	// slowly, exercising the bisection fallback.
	g := func(x float64) float64 { return math.Pow(x-0.3, 3) }
	got := Interpolate(0, g(0), 1, g(1), g, 1)
	assert.InDelta(t, 0.3, got, 1e-3)
}

func TestInterpolateBoundedEvaluations(t *testing.T) {
	count := 0
	raw := func(x float64) float64 { return x*x - 0.25 }
	g := func(x float64) float64 {
		count++
		return raw(x)
	}
	Interpolate(0, raw(0), 1, raw(1), g, 1)
	assert.LessOrEqual(t, count, 9)
}
