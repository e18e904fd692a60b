//-----------------------------------------------------------------------------
/*

Quad merger (C7, 3D only): coalesces axis-aligned quads that share an edge,
lie in the same plane, and together form a larger axis-aligned rectangle.
Candidate adjacency queries run against an R-tree (github.com/dhconnelly/
rtreego) keyed on each quad's in-plane (u,v) extents, grouped by plane so
the tree never mixes quads that cannot possibly merge.

*/
//-----------------------------------------------------------------------------

package render

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// mergeTolFrac is the fraction of minres used as the coplanarity and
// edge-adjacency tolerance.
const mergeTolFrac = 0.05

// quadEntry adapts a Quad3 to rtreego.Spatial, indexed on its (u,v) rect.
type quadEntry struct {
	q Quad3
}

func (e *quadEntry) Bounds() *rtreego.Rect {
	const minLen = 1e-9
	uLen := e.q.uHi - e.q.uLo
	if uLen < minLen {
		uLen = minLen
	}
	vLen := e.q.vHi - e.q.vLo
	if vLen < minLen {
		vLen = minLen
	}
	r, err := rtreego.NewRect(rtreego.Point{e.q.uLo, e.q.vLo}, []float64{uLen, vLen})
	if err != nil {
		panic(err)
	}
	return r
}

// planeKey groups quads that could possibly be coplanar, by axis and a
// quantized plane coordinate.
type planeKey struct {
	ax    axis
	plane int64
}

// mergeQuads coalesces quads to a fixed point and returns the triangles of
// whatever quads remain after merging.
func mergeQuads(quads []Quad3, minres float64) []*Triangle3 {
	tol := mergeTolFrac * minres
	if tol <= 0 {
		tol = mergeTolFrac
	}

	groups := make(map[planeKey][]Quad3)
	for _, q := range quads {
		k := planeKey{ax: q.normal, plane: quantize(q.plane, tol)}
		groups[k] = append(groups[k], q)
	}

	// Visit planes in a fixed order so the output does not depend on map
	// iteration order.
	keys := make([]planeKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].ax != keys[b].ax {
			return keys[a].ax < keys[b].ax
		}
		return keys[a].plane < keys[b].plane
	})

	var tris []*Triangle3
	for _, k := range keys {
		merged := mergeCoplanarGroup(groups[k], tol)
		for _, q := range merged {
			tris = append(tris, q.Triangles()...)
		}
	}
	return tris
}

// mergeCoplanarGroup iterates pairwise merges within a single plane until
// no further merge is found.
func mergeCoplanarGroup(quads []Quad3, tol float64) []Quad3 {
	current := append([]Quad3{}, quads...)

	for {
		tree := rtreego.NewTree(2, 4, 16)
		entries := make([]*quadEntry, len(current))
		for i, q := range current {
			entries[i] = &quadEntry{q: q}
			tree.Insert(entries[i])
		}

		mergedAny := false
		consumed := make([]bool, len(current))
		var next []Quad3

		for i, qi := range current {
			if consumed[i] {
				continue
			}
			uLen := qi.uHi - qi.uLo
			vLen := qi.vHi - qi.vLo
			expanded, err := rtreego.NewRect(
				rtreego.Point{qi.uLo - tol, qi.vLo - tol},
				[]float64{uLen + 2*tol, vLen + 2*tol},
			)
			if err != nil {
				next = append(next, qi)
				consumed[i] = true
				continue
			}

			merged := false
			for _, hit := range tree.SearchIntersect(expanded) {
				he := hit.(*quadEntry)
				j := indexOfEntry(entries, he)
				if j < 0 || j == i || consumed[j] {
					continue
				}
				if u, ok := unionRect(qi, current[j], tol); ok {
					consumed[i] = true
					consumed[j] = true
					next = append(next, u)
					mergedAny = true
					merged = true
					break
				}
			}
			if !merged && !consumed[i] {
				next = append(next, qi)
				consumed[i] = true
			}
		}

		current = next
		if !mergedAny {
			return current
		}
	}
}

func indexOfEntry(entries []*quadEntry, target *quadEntry) int {
	for i, e := range entries {
		if e == target {
			return i
		}
	}
	return -1
}

// unionRect reports whether a and b share a full edge in the same plane
// and, if so, returns their axis-aligned union.
func unionRect(a, b Quad3, tol float64) (Quad3, bool) {
	if a.normal != b.normal || a.outward != b.outward {
		return Quad3{}, false
	}
	if absDiff(a.plane, b.plane) > tol {
		return Quad3{}, false
	}

	sameV := absDiff(a.vLo, b.vLo) <= tol && absDiff(a.vHi, b.vHi) <= tol
	if sameV {
		if absDiff(a.uHi, b.uLo) <= tol {
			return Quad3{normal: a.normal, outward: a.outward, plane: a.plane, uLo: a.uLo, uHi: b.uHi, vLo: a.vLo, vHi: a.vHi}, true
		}
		if absDiff(b.uHi, a.uLo) <= tol {
			return Quad3{normal: a.normal, outward: a.outward, plane: a.plane, uLo: b.uLo, uHi: a.uHi, vLo: a.vLo, vHi: a.vHi}, true
		}
	}

	sameU := absDiff(a.uLo, b.uLo) <= tol && absDiff(a.uHi, b.uHi) <= tol
	if sameU {
		if absDiff(a.vHi, b.vLo) <= tol {
			return Quad3{normal: a.normal, outward: a.outward, plane: a.plane, uLo: a.uLo, uHi: a.uHi, vLo: a.vLo, vHi: b.vHi}, true
		}
		if absDiff(b.vHi, a.vLo) <= tol {
			return Quad3{normal: a.normal, outward: a.outward, plane: a.plane, uLo: a.uLo, uHi: a.uHi, vLo: b.vLo, vHi: a.vHi}, true
		}
	}

	return Quad3{}, false
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
