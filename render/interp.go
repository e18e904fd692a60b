//-----------------------------------------------------------------------------
/*

Zero-crossing interpolator.

Locates the root of a field restricted to a grid edge using a hybrid
secant/bisection scheme. Secant (regula falsi) steps converge fast on
well-behaved edges; when an endpoint is near-tangent to the field (a
common case where a neighbouring axis dominates locally) secant makes
almost no progress and the algorithm falls back to guaranteed-halving
bisection.

*/
//-----------------------------------------------------------------------------

package render

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

//-----------------------------------------------------------------------------

// zeroTol is the tolerance used to treat a field value as exactly zero.
const zeroTol = 1e-15

// maxSecantSteps bounds the secant phase of Interpolate.
const maxSecantSteps = 4

// maxBisectSteps bounds the bisection fallback of Interpolate.
const maxBisectSteps = 5

// secantProgressRatio is the improvement ratio below which secant is
// judged to be making good progress and is allowed to continue.
const secantProgressRatio = 0.3

//-----------------------------------------------------------------------------

// Func1 is a field restricted to a single grid edge, parameterized by the
// edge's coordinate.
type Func1 func(t float64) float64

func isZero(v float64) bool {
	return floats.EqualWithinAbs(v, 0, zeroTol)
}

func sameSign(x, y float64) bool {
	return (x > 0 && y > 0) || (x < 0 && y < 0)
}

// Interpolate locates the zero crossing of g over [a,b] (or [b,a]), given
// the field values fa = g(a), fb = g(b). If fa and fb do not bracket a
// root, a is returned unchanged — the caller will not use the value.
//
// res is the local grid resolution; it is threaded through for future use
// by callers coupling early termination to cell size, but is not currently
// consulted (see SPEC_FULL.md's resolution of Open Question §9.2).
func Interpolate(a, fa, b, fb float64, g Func1, res float64) float64 {
	_ = res

	if fa*fb > 0 {
		return a
	}
	if isZero(fa) {
		return a
	}
	if isZero(fb) {
		return b
	}

	// Normalize so the first endpoint carries the larger (more positive) value.
	if fa < fb {
		a, fa, b, fb = b, fb, a, fa
	}

	for iter := 0; iter < maxSecantSteps; iter++ {
		mid := a + (b-a)*fa/(fa-fb)
		mval := g(mid)
		if isZero(mval) {
			return mid
		}

		var replaced float64
		if sameSign(mval, fa) {
			replaced = fa
			a, fa = mid, mval
		} else {
			replaced = fb
			b, fb = mid, mval
		}

		improveRatio := mval / replaced
		if math.Abs(improveRatio) >= secantProgressRatio {
			break
		}
	}

	// Bisection fallback: guaranteed linear convergence.
	for i := 0; i < maxBisectSteps; i++ {
		mid := (a + b) / 2
		mval := g(mid)
		if isZero(mval) {
			return mid
		}
		if sameSign(mval, fa) {
			a, fa = mid, mval
		} else {
			b, fb = mid, mval
		}
	}

	if math.Abs(fa) < math.Abs(fb) {
		return a
	}
	return b
}
