//-----------------------------------------------------------------------------
/*

Loop stitcher (C4): joins oriented segment chains sharing endpoints into
closed loops. Endpoint coordinates are quantized to a tolerance far smaller
than the grid step so that two cells reading the same cached edge-crossing
point (Invariant 1, §3) are guaranteed to match.

*/
//-----------------------------------------------------------------------------

package render

import (
	"github.com/deadsy/sdfpoly/vec/v2"
	"github.com/deadsy/sdfpoly/vec/v3"
)

// stitchQuantum is the fraction of the local grid step used to quantize
// endpoint coordinates for the stitcher's lookup table.
const stitchQuantum = 1e-6

type key2 [2]int64
type key3 [3]int64

func quantize(v, scale float64) int64 {
	return int64(v/scale + 0.5)
}

func keyOf2(p v2.Vec, scale float64) key2 {
	return key2{quantize(p.X, scale), quantize(p.Y, scale)}
}

func keyOf3(p v3.Vec, scale float64) key3 {
	return key3{quantize(p.X, scale), quantize(p.Y, scale), quantize(p.Z, scale)}
}

//-----------------------------------------------------------------------------

// stitchLoops2 consumes a bag of oriented 2D chains and emits closed
// loops. Chains whose endpoint matches no other chain's start are dropped;
// droppedCount reports how many (indicates a bug upstream or a field that
// violates the intermediate-value theorem on a cell edge, §4.4).
func stitchLoops2(chains []Chain2, step float64) (loops []Polyline2, droppedCount int) {
	scale := step * stitchQuantum
	if scale <= 0 {
		scale = stitchQuantum
	}

	byStart := make(map[key2]int, len(chains))
	used := make([]bool, len(chains))
	for i, c := range chains {
		byStart[keyOf2(c[0], scale)] = i
	}

	for i := range chains {
		if used[i] {
			continue
		}
		used[i] = true
		loop := append(Chain2{}, chains[i]...)
		startKey := keyOf2(chains[i][0], scale)

		for {
			tailKey := keyOf2(loop[len(loop)-1], scale)
			if tailKey == startKey {
				break
			}
			next, ok := byStart[tailKey]
			if !ok || used[next] {
				break
			}
			used[next] = true
			loop = append(loop, chains[next][1:]...)
		}

		if keyOf2(loop[len(loop)-1], scale) == startKey {
			loops = append(loops, Polyline2{V: loop})
		} else {
			droppedCount++
		}
	}

	return loops, droppedCount
}

//-----------------------------------------------------------------------------

// stitchLoops3 is the 3D analogue of stitchLoops2, operating on chains
// confined to the 6 faces of a single cell.
func stitchLoops3(chains []Chain3, step float64) (loops []loop3, droppedCount int) {
	scale := step * stitchQuantum
	if scale <= 0 {
		scale = stitchQuantum
	}

	byStart := make(map[key3]int, len(chains))
	used := make([]bool, len(chains))
	for i, c := range chains {
		byStart[keyOf3(c[0], scale)] = i
	}

	for i := range chains {
		if used[i] {
			continue
		}
		used[i] = true
		loop := append(Chain3{}, chains[i]...)
		startKey := keyOf3(chains[i][0], scale)

		for {
			tailKey := keyOf3(loop[len(loop)-1], scale)
			if tailKey == startKey {
				break
			}
			next, ok := byStart[tailKey]
			if !ok || used[next] {
				break
			}
			used[next] = true
			loop = append(loop, chains[next][1:]...)
		}

		if keyOf3(loop[len(loop)-1], scale) == startKey {
			loops = append(loops, loop3{V: loop})
		} else {
			droppedCount++
		}
	}

	return loops, droppedCount
}
