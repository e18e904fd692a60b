//-----------------------------------------------------------------------------
/*

Polyline cleaner (C5, 2D only): merges colinear runs, drops degenerate
loops, and trusts the orientation invariant already established by the
segment extractor (C2) and loop stitcher (C4) — every emitted segment
already carries the object's interior to its left, so a closed loop built
from them does too; this pass only removes numerical noise that could
obscure that invariant.

*/
//-----------------------------------------------------------------------------

package render

import (
	"math"

	"github.com/deadsy/sdfpoly/vec/v2"
)

// cleanPolylines collapses colinear runs and drops loops with fewer than
// 3 distinct vertices or near-zero enclosed area.
func cleanPolylines(loops []Polyline2, tol float64) []Polyline2 {
	out := make([]Polyline2, 0, len(loops))
	for _, l := range loops {
		pts := collapseColinear(l.V, tol)
		if distinctCount(pts) < 3 {
			continue
		}
		if math.Abs(signedArea(pts)) < tol*tol {
			continue
		}
		out = append(out, Polyline2{V: pts})
	}
	return out
}

// distinctCount returns the number of distinct vertices in a closed
// polyline (first == last is not double-counted).
func distinctCount(v []v2.Vec) int {
	if len(v) < 2 {
		return len(v)
	}
	return len(v) - 1
}

// signedArea computes the signed shoelace area of a closed polyline
// (positive for a CCW traversal).
func signedArea(v []v2.Vec) float64 {
	if len(v) < 4 {
		return 0
	}
	open := v[:len(v)-1]
	var area float64
	n := len(open)
	for i := 0; i < n; i++ {
		a := open[i]
		b := open[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// collapseColinear repeatedly removes any vertex whose removal leaves its
// neighbors within tol of colinear, until no more can be removed.
func collapseColinear(v []v2.Vec, tol float64) []v2.Vec {
	if len(v) < 4 {
		return v
	}
	open := append([]v2.Vec{}, v[:len(v)-1]...)

	for {
		n := len(open)
		if n < 3 {
			break
		}
		removed := -1
		for i := 0; i < n; i++ {
			a := open[(i-1+n)%n]
			b := open[i]
			c := open[(i+1)%n]
			if colinear(a, b, c, tol) {
				removed = i
				break
			}
		}
		if removed < 0 {
			break
		}
		open = append(open[:removed], open[removed+1:]...)
	}

	return append(open, open[0])
}

// colinear reports whether b lies within tol of the line through a and c.
func colinear(a, b, c v2.Vec, tol float64) bool {
	base := c.Sub(a)
	baseLen := base.Length()
	if baseLen < 1e-15 {
		return true
	}
	cross := base.Cross(b.Sub(a))
	dist := math.Abs(cross) / baseLen
	return dist < tol
}
