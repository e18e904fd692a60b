//-----------------------------------------------------------------------------
/*

Geometry carriers produced by the polygonization core: closed loops and
polylines, triangles and axis-aligned quads. Per-face segment chains
(Chain2/Chain3) live in face2.go/face3.go.

*/
//-----------------------------------------------------------------------------

package render

import (
	"github.com/deadsy/sdfpoly/vec/v2"
	"github.com/deadsy/sdfpoly/vec/v3"
)

//-----------------------------------------------------------------------------

// epsilon is the default tolerance for point/degeneracy comparisons.
const epsilon = 1e-9

//-----------------------------------------------------------------------------

// Polyline2 is an ordered sequence of 2D points. Output polylines have
// first == last (closed).
type Polyline2 struct {
	V []v2.Vec
}

// Closed reports whether the first and last points coincide within eps.
func (p Polyline2) Closed(eps float64) bool {
	if len(p.V) < 2 {
		return false
	}
	return p.V[0].Equals(p.V[len(p.V)-1], eps)
}

//-----------------------------------------------------------------------------

// loop3 is a closed polyline lying on the boundary of one cell, embedded
// in R3. It is an intermediate value between the loop stitcher and the
// tessellator — never returned to callers of GetMesh.
type loop3 struct {
	V []v3.Vec
}

//-----------------------------------------------------------------------------

// Triangle3 is a CCW-oriented (outward from the object) triangle.
type Triangle3 struct {
	V [3]v3.Vec
}

// Degenerate reports whether the triangle has near-zero area, i.e. two or
// more vertices coincide within tolerance e.
func (t *Triangle3) Degenerate(e float64) bool {
	if e == 0 {
		e = epsilon
	}
	return t.V[0].Equals(t.V[1], e) || t.V[1].Equals(t.V[2], e) || t.V[2].Equals(t.V[0], e)
}

//-----------------------------------------------------------------------------

// axis identifies which world axis an axis-aligned quad's plane is normal to.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// Quad3 is a planar, axis-aligned quad, CCW-outward. plane is the fixed
// coordinate value on the normal axis; lo/hi are the extents on the two
// in-plane axes (u then v, in the cyclic order x->y->z->x).
type Quad3 struct {
	normal   axis
	outward  bool // true if the outward normal points in the +normal direction
	plane    float64
	uLo, uHi float64
	vLo, vHi float64
}

// Triangles splits the quad into two triangles sharing its shorter
// diagonal, so the choice is deterministic regardless of merge order
// (Invariant 3, determinism).
func (q Quad3) Triangles() []*Triangle3 {
	corners := q.corners()
	d02 := corners[0].Sub(corners[2]).Length()
	d13 := corners[1].Sub(corners[3]).Length()
	if d02 <= d13 {
		return []*Triangle3{
			{V: [3]v3.Vec{corners[0], corners[1], corners[2]}},
			{V: [3]v3.Vec{corners[0], corners[2], corners[3]}},
		}
	}
	return []*Triangle3{
		{V: [3]v3.Vec{corners[0], corners[1], corners[3]}},
		{V: [3]v3.Vec{corners[1], corners[2], corners[3]}},
	}
}

// corners returns the 4 world-space corners of the quad in CCW order as
// seen from outside the object.
func (q Quad3) corners() [4]v3.Vec {
	uv := [4][2]float64{
		{q.uLo, q.vLo},
		{q.uHi, q.vLo},
		{q.uHi, q.vHi},
		{q.uLo, q.vHi},
	}
	var out [4]v3.Vec
	for i, p := range uv {
		out[i] = q.embed(p[0], p[1])
	}
	if !q.outward {
		// reverse to keep CCW-outward when the face normal is negative.
		out[1], out[3] = out[3], out[1]
	}
	return out
}

// embed maps in-plane (u,v) coordinates to a world point on the quad's
// axis-aligned plane. u runs along the axis following normal (cyclically),
// v along the one after that.
func (q Quad3) embed(u, v float64) v3.Vec {
	switch q.normal {
	case axisX:
		return v3.Vec{X: q.plane, Y: u, Z: v}
	case axisY:
		return v3.Vec{X: v, Y: q.plane, Z: u}
	default:
		return v3.Vec{X: u, Y: v, Z: q.plane}
	}
}
