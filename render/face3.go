//-----------------------------------------------------------------------------
/*

Segment extractor (C2) and refiner (C3) for the 6 axis-aligned faces of a
single 3D cell. Each face reduces to the same marching-squares case logic
as the 2D extractor (square.go), with a per-face choice of in-plane (u,v)
axes such that u x v points along the face's outward normal — this keeps
every face's "interior on the left of P->Q" convention consistent with a
single global outward-facing surface.

*/
//-----------------------------------------------------------------------------

package render

import (
	"gonum.org/v1/gonum/floats"

	"github.com/deadsy/sdfpoly/vec/v3"
)

// Chain3 is the 3D analogue of Chain2: an oriented, possibly-refined
// polyline confined to one face of one cell, interior to its left.
type Chain3 []v3.Vec

// faceGeom carries everything faceChains needs to describe one face of
// one cell: the inside/outside classification of its corners in local CCW
// order, the 4 edge-crossing points in the same order square.go expects,
// and the outward unit normal.
type faceGeom struct {
	inside [4]bool
	edgePt [4]v3.Vec
	normal v3.Vec
}

// getSegs3 emits the chains for all 6 faces of cell (i,j,k).
func getSegs3(s func(v3.Vec) float64, g *Grid3, c *fieldCache3, i, j, k int) []Chain3 {
	minStep := g.R.X
	if g.R.Y < minStep {
		minStep = g.R.Y
	}
	if g.R.Z < minStep {
		minStep = g.R.Z
	}

	var chains []Chain3
	for _, fg := range cellFaces(g, c, i, j, k) {
		chains = append(chains, faceChains(fg, s, minStep)...)
	}
	return chains
}

// faceChains runs the shared marching-squares case logic over one face and
// refines the resulting segments.
func faceChains(fg faceGeom, s func(v3.Vec) float64, minStep float64) []Chain3 {
	centerInside := false
	if isSaddle(fg.inside) {
		var center v3.Vec
		for _, p := range fg.edgePt {
			center = center.Add(p)
		}
		center = center.DivScalar(4)
		centerInside = s(center) <= 0
	}

	pairs := squareCrossings(fg.inside, centerInside)
	if len(pairs) == 0 {
		return nil
	}

	chains := make([]Chain3, 0, len(pairs))
	for _, pr := range pairs {
		p, q := fg.edgePt[pr.p], fg.edgePt[pr.q]
		chains = append(chains, refineChain3(p, q, fg.normal, s, minStep, 0))
	}
	return chains
}

//-----------------------------------------------------------------------------

// cellFaces builds the faceGeom for all 6 faces of cell (i,j,k), in the
// +Z, -Z, +X, -X, +Y, -Y order.
func cellFaces(g *Grid3, c *fieldCache3, i, j, k int) [6]faceGeom {
	C := g.Corner
	var f [6]faceGeom

	// +Z: u=x, v=y
	f[0] = faceGeom{
		inside: signs(c.V(i, j, k+1), c.V(i+1, j, k+1), c.V(i+1, j+1, k+1), c.V(i, j+1, k+1)),
		normal: v3.Vec{Z: 1},
		edgePt: [4]v3.Vec{
			{X: c.Mx(i, j, k+1), Y: C(i, j, k+1).Y, Z: C(i, j, k+1).Z},
			{X: C(i+1, j, k+1).X, Y: c.My(i+1, j, k+1), Z: C(i+1, j, k+1).Z},
			{X: c.Mx(i, j+1, k+1), Y: C(i, j+1, k+1).Y, Z: C(i, j+1, k+1).Z},
			{X: C(i, j, k+1).X, Y: c.My(i, j, k+1), Z: C(i, j, k+1).Z},
		},
	}

	// -Z: u=y, v=x
	f[1] = faceGeom{
		inside: signs(c.V(i, j, k), c.V(i, j+1, k), c.V(i+1, j+1, k), c.V(i+1, j, k)),
		normal: v3.Vec{Z: -1},
		edgePt: [4]v3.Vec{
			{X: C(i, j, k).X, Y: c.My(i, j, k), Z: C(i, j, k).Z},
			{X: c.Mx(i, j+1, k), Y: C(i, j+1, k).Y, Z: C(i, j+1, k).Z},
			{X: C(i+1, j, k).X, Y: c.My(i+1, j, k), Z: C(i+1, j, k).Z},
			{X: c.Mx(i, j, k), Y: C(i, j, k).Y, Z: C(i, j, k).Z},
		},
	}

	// +X: u=y, v=z
	f[2] = faceGeom{
		inside: signs(c.V(i+1, j, k), c.V(i+1, j+1, k), c.V(i+1, j+1, k+1), c.V(i+1, j, k+1)),
		normal: v3.Vec{X: 1},
		edgePt: [4]v3.Vec{
			{X: C(i+1, j, k).X, Y: c.My(i+1, j, k), Z: C(i+1, j, k).Z},
			{X: C(i+1, j+1, k).X, Y: C(i+1, j+1, k).Y, Z: c.Mz(i+1, j+1, k)},
			{X: C(i+1, j, k+1).X, Y: c.My(i+1, j, k+1), Z: C(i+1, j, k+1).Z},
			{X: C(i+1, j, k).X, Y: C(i+1, j, k).Y, Z: c.Mz(i+1, j, k)},
		},
	}

	// -X: u=z, v=y
	f[3] = faceGeom{
		inside: signs(c.V(i, j, k), c.V(i, j, k+1), c.V(i, j+1, k+1), c.V(i, j+1, k)),
		normal: v3.Vec{X: -1},
		edgePt: [4]v3.Vec{
			{X: C(i, j, k).X, Y: C(i, j, k).Y, Z: c.Mz(i, j, k)},
			{X: C(i, j, k+1).X, Y: c.My(i, j, k+1), Z: C(i, j, k+1).Z},
			{X: C(i, j+1, k).X, Y: C(i, j+1, k).Y, Z: c.Mz(i, j+1, k)},
			{X: C(i, j, k).X, Y: c.My(i, j, k), Z: C(i, j, k).Z},
		},
	}

	// +Y: u=z, v=x
	f[4] = faceGeom{
		inside: signs(c.V(i, j+1, k), c.V(i, j+1, k+1), c.V(i+1, j+1, k+1), c.V(i+1, j+1, k)),
		normal: v3.Vec{Y: 1},
		edgePt: [4]v3.Vec{
			{X: C(i, j+1, k).X, Y: C(i, j+1, k).Y, Z: c.Mz(i, j+1, k)},
			{X: c.Mx(i, j+1, k+1), Y: C(i, j+1, k+1).Y, Z: C(i, j+1, k+1).Z},
			{X: C(i+1, j+1, k).X, Y: C(i+1, j+1, k).Y, Z: c.Mz(i+1, j+1, k)},
			{X: c.Mx(i, j+1, k), Y: C(i, j+1, k).Y, Z: C(i, j+1, k).Z},
		},
	}

	// -Y: u=x, v=z
	f[5] = faceGeom{
		inside: signs(c.V(i, j, k), c.V(i+1, j, k), c.V(i+1, j, k+1), c.V(i, j, k+1)),
		normal: v3.Vec{Y: -1},
		edgePt: [4]v3.Vec{
			{X: c.Mx(i, j, k), Y: C(i, j, k).Y, Z: C(i, j, k).Z},
			{X: C(i+1, j, k).X, Y: C(i+1, j, k).Y, Z: c.Mz(i+1, j, k)},
			{X: c.Mx(i, j, k+1), Y: C(i, j, k+1).Y, Z: C(i, j, k+1).Z},
			{X: C(i, j, k).X, Y: C(i, j, k).Y, Z: c.Mz(i, j, k)},
		},
	}

	return f
}

func signs(a, b, c, d float64) [4]bool {
	return [4]bool{a <= 0, b <= 0, c <= 0, d <= 0}
}

//-----------------------------------------------------------------------------

// refineChain3 is the 3D analogue of refineChain2, probing perpendicular to
// P->Q within the face plane (dir x normal) rather than in an arbitrary
// direction, so refinement never leaves the face it was extracted from.
func refineChain3(p, q, normal v3.Vec, g func(v3.Vec) float64, minStep float64, depth int) Chain3 {
	dir := q.Sub(p)
	segLen := dir.Length()
	tol := refineTolFrac * minStep

	if depth >= maxRefineDepth || segLen <= tol {
		return Chain3{p, q}
	}

	mid := v3.Lerp(p, q, 0.5)
	val := g(mid)
	if floats.EqualWithinAbs(val, 0, tol) {
		return Chain3{p, q}
	}

	n := dir.Cross(normal)
	nLen := n.Length()
	if nLen < 1e-15 {
		return Chain3{p, q}
	}
	n = n.DivScalar(nLen)

	h := segLen / 4
	probe := func(t float64) float64 { return g(mid.Add(n.MulScalar(t))) }
	fa, fb := probe(-h), probe(h)

	split := mid
	if fa*fb <= 0 && !(fa == 0 && fb == 0) {
		t := Interpolate(-h, fa, h, fb, probe, minStep)
		split = mid.Add(n.MulScalar(t))
	}

	left := refineChain3(p, split, normal, g, minStep, depth+1)
	right := refineChain3(split, q, normal, g, minStep, depth+1)
	return append(left, right[1:]...)
}
