//-----------------------------------------------------------------------------
/*

GetMesh: the 3D grid sweeper (C8), driving C1 (via the field cache), C2+C3
per cell face, C4 loop stitching per cell, C6 tessellation, and finally C7
quad merging across the whole sweep.

*/
//-----------------------------------------------------------------------------

package render

import (
	"github.com/deadsy/sdfpoly/sdf"
	"github.com/deadsy/sdfpoly/vec/v3"
)

// GetMesh polygonizes a 3D signed field over [p1,p2] at resolution res,
// returning an outward-facing triangle mesh.
func GetMesh(p1, p2, res v3.Vec, s sdf.SDF3) ([]*Triangle3, error) {
	g, err := NewGrid3(p1, p2, res)
	if err != nil {
		return nil, err
	}
	if g.Empty() {
		return nil, nil
	}

	cache := buildFieldCache3(s, g)
	minStep := g.R.X
	if g.R.Y < minStep {
		minStep = g.R.Y
	}
	if g.R.Z < minStep {
		minStep = g.R.Z
	}

	gFn := func(p v3.Vec) float64 { return s.Evaluate(p) }

	triCollector := newTriangleCollector(g.N.Z)
	quadCollector := make([][]Quad3, g.N.Z)

	parallelChunks(g.N.Z, chunkSize, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			var sliceTris []*Triangle3
			var sliceQuads []Quad3
			for i := 0; i < g.N.X; i++ {
				for j := 0; j < g.N.Y; j++ {
					chains := getSegs3(gFn, g, cache, i, j, k)
					if len(chains) == 0 {
						continue
					}
					loops, _ := stitchLoops3(chains, minStep)
					for _, l := range loops {
						quads, tris := tessellateLoop3(l, minStep)
						sliceQuads = append(sliceQuads, quads...)
						sliceTris = append(sliceTris, tris...)
					}
				}
			}
			triCollector.set(k, sliceTris)
			quadCollector[k] = sliceQuads
		}
	})

	var allQuads []Quad3
	for _, q := range quadCollector {
		allQuads = append(allQuads, q...)
	}

	tris := triCollector.flatten()
	tris = append(tris, mergeQuads(allQuads, minStep)...)
	return tris, nil
}
