//-----------------------------------------------------------------------------
/*

Grid geometry shared by the 2D contour sweep and the 3D mesh sweep: step
counts, actual step size, and corner coordinates (§3 Grid).

*/
//-----------------------------------------------------------------------------

package render

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfpoly/vec/v2"
	"github.com/deadsy/sdfpoly/vec/v2i"
	"github.com/deadsy/sdfpoly/vec/v3"
	"github.com/deadsy/sdfpoly/vec/v3i"
)

//-----------------------------------------------------------------------------

// Grid2 is a uniform 2D grid over [Min, Min+N*R].
type Grid2 struct {
	Min v2.Vec
	N   v2i.Vec
	R   v2.Vec
}

// NewGrid2 builds a Grid2 covering [p1,p2] at approximately res spacing.
// An empty region (p1 >= p2 on any axis) yields a grid with zero cells.
// A non-positive resolution component is an InvalidArgument error (§7).
func NewGrid2(p1, p2, res v2.Vec) (*Grid2, error) {
	if res.X <= 0 || res.Y <= 0 {
		return nil, fmt.Errorf("sdfpoly: resolution must be positive, got %v", res)
	}
	if p1.X >= p2.X || p1.Y >= p2.Y {
		return &Grid2{Min: p1, N: v2i.Vec{}, R: res}, nil
	}
	size := p2.Sub(p1)
	n := v2i.Vec{
		X: int(math.Ceil(size.X / res.X)),
		Y: int(math.Ceil(size.Y / res.Y)),
	}
	r := v2.Vec{X: size.X / float64(n.X), Y: size.Y / float64(n.Y)}
	return &Grid2{Min: p1, N: n, R: r}, nil
}

// Corner returns the world coordinate of grid corner (i,j).
func (g *Grid2) Corner(i, j int) v2.Vec {
	return v2.Vec{X: g.Min.X + float64(i)*g.R.X, Y: g.Min.Y + float64(j)*g.R.Y}
}

// Empty reports whether the grid has zero cells on either axis.
func (g *Grid2) Empty() bool {
	return g.N.X == 0 || g.N.Y == 0
}

//-----------------------------------------------------------------------------

// Grid3 is a uniform 3D grid over [Min, Min+N*R].
type Grid3 struct {
	Min v3.Vec
	N   v3i.Vec
	R   v3.Vec
}

// NewGrid3 is the 3D analogue of NewGrid2.
func NewGrid3(p1, p2, res v3.Vec) (*Grid3, error) {
	if res.X <= 0 || res.Y <= 0 || res.Z <= 0 {
		return nil, fmt.Errorf("sdfpoly: resolution must be positive, got %v", res)
	}
	if p1.X >= p2.X || p1.Y >= p2.Y || p1.Z >= p2.Z {
		return &Grid3{Min: p1, N: v3i.Vec{}, R: res}, nil
	}
	size := p2.Sub(p1)
	n := v3i.Vec{
		X: int(math.Ceil(size.X / res.X)),
		Y: int(math.Ceil(size.Y / res.Y)),
		Z: int(math.Ceil(size.Z / res.Z)),
	}
	r := v3.Vec{X: size.X / float64(n.X), Y: size.Y / float64(n.Y), Z: size.Z / float64(n.Z)}
	return &Grid3{Min: p1, N: n, R: r}, nil
}

// Corner returns the world coordinate of grid corner (i,j,k).
func (g *Grid3) Corner(i, j, k int) v3.Vec {
	return v3.Vec{
		X: g.Min.X + float64(i)*g.R.X,
		Y: g.Min.Y + float64(j)*g.R.Y,
		Z: g.Min.Z + float64(k)*g.R.Z,
	}
}

// Empty reports whether the grid has zero cells on any axis.
func (g *Grid3) Empty() bool {
	return g.N.X == 0 || g.N.Y == 0 || g.N.Z == 0
}
