//-----------------------------------------------------------------------------
/*

GetContour: the 2D grid sweeper (C8), driving C1 (via the field cache),
C2+C3 per cell, C4 loop stitching, and C5 polyline cleaning.

*/
//-----------------------------------------------------------------------------

package render

import (
	"github.com/deadsy/sdfpoly/sdf"
	"github.com/deadsy/sdfpoly/vec/v2"
)

// GetContour polygonizes a 2D signed field over [p1,p2] at resolution res,
// returning closed polylines with the object's interior to the left of
// traversal.
func GetContour(p1, p2, res v2.Vec, s sdf.SDF2) ([]Polyline2, error) {
	g, err := NewGrid2(p1, p2, res)
	if err != nil {
		return nil, err
	}
	if g.Empty() {
		return nil, nil
	}

	cache := buildFieldCache2(s, g)

	minStep := g.R.X
	if g.R.Y < minStep {
		minStep = g.R.Y
	}

	gFn := func(p v2.Vec) float64 { return s.Evaluate(p) }

	collector := newPolylineCollector(g.N.Y)
	parallelChunks(g.N.Y, chunkSize, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			var row []Chain2
			for i := 0; i < g.N.X; i++ {
				c00 := cache.V(i, j)
				c10 := cache.V(i+1, j)
				c11 := cache.V(i+1, j+1)
				c01 := cache.V(i, j+1)
				x0, y0 := g.Corner(i, j).X, g.Corner(i, j).Y
				x1, y1 := g.Corner(i+1, j+1).X, g.Corner(i+1, j+1).Y
				mx0 := cache.Mx(i, j)
				mx1 := cache.Mx(i, j+1)
				my0 := cache.My(i, j)
				my1 := cache.My(i+1, j)
				segs := getSegs2(x0, y0, x1, y1, gFn, c00, c10, c11, c01, mx0, mx1, my0, my1, minStep)
				row = append(row, segs...)
			}
			collector.set(j, row)
		}
	})

	loops, _ := stitchLoops2(collector.flatten(), minStep)
	return cleanPolylines(loops, minStep*rectTolFrac), nil
}
