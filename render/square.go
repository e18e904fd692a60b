//-----------------------------------------------------------------------------
/*

Marching-squares case logic shared by the 2D contour extractor and the
per-face extractor used on each of a cube's 6 faces in 3D.

Corners are numbered 0..3 going CCW around the face: (x0,y0), (x1,y0),
(x1,y1), (x0,y1). Edges are numbered 0..3, edge k joining corner k to
corner (k+1)%4: edge0 = bottom, edge1 = right, edge2 = top, edge3 = left.

*/
//-----------------------------------------------------------------------------

package render

//-----------------------------------------------------------------------------

// edgePair is one emitted segment, given as the edge index its P endpoint
// lies on and the edge index its Q endpoint lies on.
type edgePair struct {
	p, q int
}

// squareCrossings returns the segments to emit for a face whose 4 corners
// have the given inside/outside classification, using centerInside to
// disambiguate the two saddle cases (diagonal corners alternating sign).
func squareCrossings(inside [4]bool, centerInside bool) []edgePair {
	var startEdge, endEdge [4]bool
	nStart := 0
	for k := 0; k < 4; k++ {
		j := (k + 1) % 4
		if inside[k] && !inside[j] {
			startEdge[k] = true
			nStart++
		} else if !inside[k] && inside[j] {
			endEdge[k] = true
		}
	}

	switch nStart {
	case 0:
		return nil
	case 1:
		var s, e int = -1, -1
		for k := 0; k < 4; k++ {
			if startEdge[k] {
				s = k
			}
			if endEdge[k] {
				e = k
			}
		}
		return []edgePair{{p: s, q: e}}
	default:
		// Saddle: 2 starts, 2 ends, alternating around the face.
		// Forward pairing (start -> following end) is correct when the
		// face center shares the sign of the corners where the starts
		// originate (i.e. the center is inside); otherwise pair each
		// start with the preceding end.
		var pairs []edgePair
		for k := 0; k < 4; k++ {
			if !startEdge[k] {
				continue
			}
			var j int
			if centerInside {
				j = (k + 1) % 4
			} else {
				j = (k + 3) % 4
			}
			pairs = append(pairs, edgePair{p: k, q: j})
		}
		return pairs
	}
}

//-----------------------------------------------------------------------------

// isSaddle reports whether the 4 corner signs form one of the two
// ambiguous diagonal cases, requiring a face-center sample.
func isSaddle(inside [4]bool) bool {
	return (inside[0] == inside[2] && inside[1] == inside[3] && inside[0] != inside[1])
}
