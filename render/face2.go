//-----------------------------------------------------------------------------
/*

Segment extractor (C2) and refiner (C3) for a single 2D cell.

*/
//-----------------------------------------------------------------------------

package render

import (
	"gonum.org/v1/gonum/floats"

	"github.com/deadsy/sdfpoly/vec/v2"
)

//-----------------------------------------------------------------------------

// Chain2 is an oriented, possibly-refined polyline approximating one
// marching-squares segment: V[0] is the segment's P endpoint, V[len-1] is
// its Q endpoint, with the object's interior to the left of traversal.
type Chain2 []v2.Vec

// refineTolFrac is the fraction of the local grid step used as the
// deviation/length tolerance for segment refinement (C3).
const refineTolFrac = 0.05

// maxRefineDepth bounds the recursion depth of segment refinement.
const maxRefineDepth = 3

// getSegs2 emits the 0, 1 or 2 oriented segments a cell's 4 corner signs
// and 4 edge-crossing midpoints imply, refining each via C3. Corners are
// c00=(x0,y0), c10=(x1,y0), c11=(x1,y1), c01=(x0,y1). mx0/mx1 are the
// x-crossing on the bottom/top edges, my0/my1 the y-crossing on the
// left/right edges. minStep is min(rx,ry), used to scale refinement
// tolerance.
func getSegs2(x0, y0, x1, y1 float64, g func(v2.Vec) float64, c00, c10, c11, c01 float64, mx0, mx1, my0, my1, minStep float64) []Chain2 {
	inside := [4]bool{c00 <= 0, c10 <= 0, c11 <= 0, c01 <= 0}

	centerInside := false
	if isSaddle(inside) {
		center := g(v2.Vec{X: (x0 + x1) / 2, Y: (y0 + y1) / 2})
		centerInside = center <= 0
	}

	pairs := squareCrossings(inside, centerInside)
	if len(pairs) == 0 {
		return nil
	}

	edgePts := [4]v2.Vec{
		{X: mx0, Y: y0},
		{X: x1, Y: my1},
		{X: mx1, Y: y1},
		{X: x0, Y: my0},
	}

	chains := make([]Chain2, 0, len(pairs))
	for _, pr := range pairs {
		p, q := edgePts[pr.p], edgePts[pr.q]
		chains = append(chains, refineChain2(p, q, g, minStep, 0))
	}
	return chains
}

//-----------------------------------------------------------------------------

// refineChain2 recursively subdivides P->Q when its midpoint deviates from
// the true zero-set, pushing the split point toward the surface along the
// perpendicular to P->Q via the C1 interpolator.
func refineChain2(p, q v2.Vec, g func(v2.Vec) float64, minStep float64, depth int) Chain2 {
	dir := q.Sub(p)
	segLen := dir.Length()
	tol := refineTolFrac * minStep

	if depth >= maxRefineDepth || segLen <= tol {
		return Chain2{p, q}
	}

	mid := v2.Lerp(p, q, 0.5)
	val := g(mid)
	if floats.EqualWithinAbs(val, 0, tol) {
		return Chain2{p, q}
	}

	n := v2.Vec{X: -dir.Y, Y: dir.X}
	nLen := n.Length()
	if nLen < 1e-15 {
		return Chain2{p, q}
	}
	n = n.DivScalar(nLen)

	h := segLen / 4
	probe := func(s float64) float64 { return g(mid.Add(n.MulScalar(s))) }
	fa, fb := probe(-h), probe(h)

	split := mid
	if fa*fb <= 0 && !(fa == 0 && fb == 0) {
		t := Interpolate(-h, fa, h, fb, probe, minStep)
		split = mid.Add(n.MulScalar(t))
	}

	left := refineChain2(p, split, g, minStep, depth+1)
	right := refineChain2(split, q, g, minStep, depth+1)
	return append(left, right[1:]...)
}
