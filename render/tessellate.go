//-----------------------------------------------------------------------------
/*

Loop tessellator (C6, 3D only): converts a closed loop on a cell's boundary
into quads and triangles. The common case — a loop that is exactly the
rectangular outline of one face, which happens whenever that face lies
entirely on one side of the surface except for its neighbours — is emitted
as a single axis-aligned Quad3 so C7 has large quads to merge. Everything
else is ear-clipped in the plane closest to the loop's own best-fit normal.

*/
//-----------------------------------------------------------------------------

package render

import (
	"math"

	"github.com/deadsy/sdfpoly/vec/v3"
)

// rectTolFrac is the fraction of minres used to recognize an
// axis-aligned rectangular loop (§4.6).
const rectTolFrac = 0.05

// tessellateLoop3 returns the quads and/or triangles approximating loop.
func tessellateLoop3(loop loop3, minres float64) ([]Quad3, []*Triangle3) {
	pts := loop.V
	if len(pts) >= 2 && pts[0].Equals(pts[len(pts)-1], epsilon) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil, nil
	}

	normal := newellNormal(pts)
	if normal.Length() < 1e-15 {
		return nil, nil
	}
	normal = normal.DivScalar(normal.Length())

	if q, ok := rectangleQuad(pts, normal, minres*rectTolFrac); ok {
		return []Quad3{q}, nil
	}

	return nil, earClip3(pts, normal)
}

//-----------------------------------------------------------------------------

// newellNormal computes a robust (possibly non-unit) normal for a nearly
// planar polygon via Newell's method, tolerant of small numerical noise.
func newellNormal(pts []v3.Vec) v3.Vec {
	var n v3.Vec
	m := len(pts)
	for i := 0; i < m; i++ {
		a := pts[i]
		b := pts[(i+1)%m]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}

// dominantAxis returns the axis whose normal component has the largest
// magnitude, and the sign of that component.
func dominantAxis(n v3.Vec) (axis, bool) {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return axisX, n.X > 0
	case ay >= ax && ay >= az:
		return axisY, n.Y > 0
	default:
		return axisZ, n.Z > 0
	}
}

func planeCoord(p v3.Vec, ax axis) (plane float64, u float64, v float64) {
	switch ax {
	case axisX:
		return p.X, p.Y, p.Z
	case axisY:
		return p.Y, p.Z, p.X
	default:
		return p.Z, p.X, p.Y
	}
}

// rectangleQuad recognizes a loop that is exactly the 4-cornered outline of
// an axis-aligned rectangle in the plane closest to normal.
func rectangleQuad(pts []v3.Vec, normal v3.Vec, tol float64) (Quad3, bool) {
	ax, positive := dominantAxis(normal)

	plane0, _, _ := planeCoord(pts[0], ax)
	uMin, uMax := math.Inf(1), math.Inf(-1)
	vMin, vMax := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		plane, u, v := planeCoord(p, ax)
		if math.Abs(plane-plane0) > tol {
			return Quad3{}, false
		}
		uMin, uMax = math.Min(uMin, u), math.Max(uMax, u)
		vMin, vMax = math.Min(vMin, v), math.Max(vMax, v)
	}
	if len(pts) != 4 || uMax-uMin < tol || vMax-vMin < tol {
		return Quad3{}, false
	}

	// Require the 4 points to be exactly the 4 corners of the bounding
	// rectangle, each appearing once, so a right triangle (which also
	// touches 2 sides of its own bounding box at every vertex) is
	// correctly rejected.
	want := [4][2]float64{{uMin, vMin}, {uMax, vMin}, {uMax, vMax}, {uMin, vMax}}
	seen := [4]bool{}
	for _, p := range pts {
		_, u, v := planeCoord(p, ax)
		matched := false
		for i, w := range want {
			if seen[i] {
				continue
			}
			if math.Abs(u-w[0]) <= tol && math.Abs(v-w[1]) <= tol {
				seen[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return Quad3{}, false
		}
	}

	return Quad3{
		normal:  ax,
		outward: positive,
		plane:   plane0,
		uLo:     uMin, uHi: uMax,
		vLo: vMin, vHi: vMax,
	}, true
}

//-----------------------------------------------------------------------------

// earClip3 triangulates a near-planar polygon by projecting onto the plane
// orthogonal to its dominant normal axis and clipping ears there.
func earClip3(orig []v3.Vec, normal v3.Vec) []*Triangle3 {
	ax, _ := dominantAxis(normal)
	n := len(orig)
	pts := append([]v3.Vec{}, orig...)
	u := make([]float64, n)
	v := make([]float64, n)
	for i, p := range pts {
		_, uu, vv := planeCoord(p, ax)
		u[i], v[i] = uu, vv
	}

	if polyArea2(u, v) < 0 {
		reverse(u)
		reverse(v)
		reverseVec(pts)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var tris []*Triangle3
	guard := 0
	for len(idx) > 3 && guard < n*n+8 {
		guard++
		clipped := false
		for k := 0; k < len(idx); k++ {
			a := idx[(k-1+len(idx))%len(idx)]
			b := idx[k]
			c := idx[(k+1)%len(idx)]
			if !isConvex(u[a], v[a], u[b], v[b], u[c], v[c]) {
				continue
			}
			if anyInside(idx, a, b, c, u, v) {
				continue
			}
			t := &Triangle3{V: [3]v3.Vec{pts[a], pts[b], pts[c]}}
			if !t.Degenerate(epsilon) {
				tris = append(tris, t)
			}
			idx = append(idx[:k], idx[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break
		}
	}
	if len(idx) == 3 {
		t := &Triangle3{V: [3]v3.Vec{pts[idx[0]], pts[idx[1]], pts[idx[2]]}}
		if !t.Degenerate(epsilon) {
			tris = append(tris, t)
		}
	}
	return tris
}

func polyArea2(u, v []float64) float64 {
	var area float64
	n := len(u)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += u[i]*v[j] - u[j]*v[i]
	}
	return area / 2
}

func isConvex(ax, ay, bx, by, cx, cy float64) bool {
	return (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) > 0
}

func pointInTri(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := (px-bx)*(ay-by) - (ax-bx)*(py-by)
	d2 := (px-cx)*(by-cy) - (bx-cx)*(py-cy)
	d3 := (px-ax)*(cy-ay) - (cx-ax)*(py-ay)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func anyInside(idx []int, a, b, c int, u, v []float64) bool {
	for _, p := range idx {
		if p == a || p == b || p == c {
			continue
		}
		if pointInTri(u[p], v[p], u[a], v[a], u[b], v[b], u[c], v[c]) {
			return true
		}
	}
	return false
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseVec(s []v3.Vec) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
