//-----------------------------------------------------------------------------
/*

Grid sweeper, field-cache half (C8): populates the corner value cache and
the per-axis edge-midpoint caches in parallel, one chunk of slices/rows at
a time. The worker pool is adapted from the teacher's evaluation fan-out
(render/march3.go's evalReq/evalRoutines/layerYZ): a bounded job channel
drained by a fixed set of goroutines, with the coordinator blocking on a
WaitGroup at the phase barrier.

*/
//-----------------------------------------------------------------------------

package render

import (
	"runtime"
	"sync"

	"github.com/deadsy/sdfpoly/sdf"
	"github.com/deadsy/sdfpoly/vec/v2"
	"github.com/deadsy/sdfpoly/vec/v3"
)

//-----------------------------------------------------------------------------

// chunkSize amortizes task scheduling overhead by grouping this many
// outer-axis slices/rows per parallel work item (§4.8).
const chunkSize = 32

type job struct {
	fn func()
	wg *sync.WaitGroup
}

var jobCh = make(chan job, 100)

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go func() {
			for j := range jobCh {
				j.fn()
				j.wg.Done()
			}
		}()
	}
}

// parallelChunks partitions [0,n) into chunks of chunkSize, runs work(lo,hi)
// for each chunk on the worker pool, and blocks until all chunks complete.
func parallelChunks(n, size int, work func(lo, hi int)) {
	if n <= 0 {
		return
	}
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		wg.Add(1)
		lo, hi := lo, hi
		jobCh <- job{fn: func() { work(lo, hi) }, wg: &wg}
	}
	wg.Wait()
}

//-----------------------------------------------------------------------------

// fieldCache2 is the populated V/Mx/My cache for a 2D sweep.
type fieldCache2 struct {
	grid *Grid2
	v    []float64 // (nx+1) x (ny+1)
	mx   []float64 // nx x (ny+1): x-crossing of edge (i,j)-(i+1,j)
	my   []float64 // (nx+1) x ny: y-crossing of edge (i,j)-(i,j+1)
}

func (c *fieldCache2) V(i, j int) float64  { return c.v[i*(c.grid.N.Y+1)+j] }
func (c *fieldCache2) Mx(i, j int) float64 { return c.mx[i*(c.grid.N.Y+1)+j] }
func (c *fieldCache2) My(i, j int) float64 { return c.my[i*c.grid.N.Y+j] }

// buildFieldCache2 evaluates s at every grid corner and locates every
// edge crossing, in parallel.
func buildFieldCache2(s sdf.SDF2, g *Grid2) *fieldCache2 {
	nx, ny := g.N.X, g.N.Y
	c := &fieldCache2{
		grid: g,
		v:    make([]float64, (nx+1)*(ny+1)),
		mx:   make([]float64, nx*(ny+1)),
		my:   make([]float64, (nx+1)*ny),
	}

	parallelChunks(nx+1, chunkSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j <= ny; j++ {
				c.v[i*(ny+1)+j] = s.Evaluate(g.Corner(i, j))
			}
		}
	})

	parallelChunks(ny+1, chunkSize, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			for i := 0; i < nx; i++ {
				y := g.Corner(i, j).Y
				gFn := func(t float64) float64 { return s.Evaluate(v2.Vec{X: t, Y: y}) }
				c.mx[i*(ny+1)+j] = Interpolate(g.Corner(i, j).X, c.V(i, j), g.Corner(i+1, j).X, c.V(i+1, j), gFn, g.R.X)
			}
		}
	})

	parallelChunks(nx+1, chunkSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j < ny; j++ {
				x := g.Corner(i, j).X
				gFn := func(t float64) float64 { return s.Evaluate(v2.Vec{X: x, Y: t}) }
				c.my[i*ny+j] = Interpolate(g.Corner(i, j).Y, c.V(i, j), g.Corner(i, j+1).Y, c.V(i, j+1), gFn, g.R.Y)
			}
		}
	})

	return c
}

//-----------------------------------------------------------------------------

// fieldCache3 is the populated V/Mx/My/Mz cache for a 3D sweep.
type fieldCache3 struct {
	grid *Grid3
	v    []float64 // (nx+1) x (ny+1) x (nz+1)
	mx   []float64 // nx x (ny+1) x (nz+1)
	my   []float64 // (nx+1) x ny x (nz+1)
	mz   []float64 // (nx+1) x (ny+1) x nz
}

func (c *fieldCache3) idxV(i, j, k int) int {
	ny, nz := c.grid.N.Y, c.grid.N.Z
	return (i*(ny+1)+j)*(nz+1) + k
}

func (c *fieldCache3) V(i, j, k int) float64 { return c.v[c.idxV(i, j, k)] }

func (c *fieldCache3) Mx(i, j, k int) float64 {
	ny, nz := c.grid.N.Y, c.grid.N.Z
	return c.mx[(i*(ny+1)+j)*(nz+1)+k]
}

func (c *fieldCache3) My(i, j, k int) float64 {
	ny, nz := c.grid.N.Y, c.grid.N.Z
	return c.my[(i*ny+j)*(nz+1)+k]
}

func (c *fieldCache3) Mz(i, j, k int) float64 {
	ny, nz := c.grid.N.Y, c.grid.N.Z
	return c.mz[(i*(ny+1)+j)*nz+k]
}

// buildFieldCache3 is the 3D analogue of buildFieldCache2. The corner, Mx
// and My phases are chunked by Z-slice; the Mz phase is chunked by X-slice.
func buildFieldCache3(s sdf.SDF3, g *Grid3) *fieldCache3 {
	nx, ny, nz := g.N.X, g.N.Y, g.N.Z
	c := &fieldCache3{
		grid: g,
		v:    make([]float64, (nx+1)*(ny+1)*(nz+1)),
		mx:   make([]float64, nx*(ny+1)*(nz+1)),
		my:   make([]float64, (nx+1)*ny*(nz+1)),
		mz:   make([]float64, (nx+1)*(ny+1)*nz),
	}

	parallelChunks(nz+1, chunkSize, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			for i := 0; i <= nx; i++ {
				for j := 0; j <= ny; j++ {
					c.v[c.idxV(i, j, k)] = s.Evaluate(g.Corner(i, j, k))
				}
			}
		}
	})

	parallelChunks(nz+1, chunkSize, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			for i := 0; i < nx; i++ {
				for j := 0; j <= ny; j++ {
					p0, p1 := g.Corner(i, j, k), g.Corner(i+1, j, k)
					gFn := func(t float64) float64 { return s.Evaluate(v3.Vec{X: t, Y: p0.Y, Z: p0.Z}) }
					c.mx[(i*(ny+1)+j)*(nz+1)+k] = Interpolate(p0.X, c.V(i, j, k), p1.X, c.V(i+1, j, k), gFn, g.R.X)
				}
			}
		}
	})

	parallelChunks(nz+1, chunkSize, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			for i := 0; i <= nx; i++ {
				for j := 0; j < ny; j++ {
					p0, p1 := g.Corner(i, j, k), g.Corner(i, j+1, k)
					gFn := func(t float64) float64 { return s.Evaluate(v3.Vec{X: p0.X, Y: t, Z: p0.Z}) }
					c.my[(i*ny+j)*(nz+1)+k] = Interpolate(p0.Y, c.V(i, j, k), p1.Y, c.V(i, j+1, k), gFn, g.R.Y)
				}
			}
		}
	})

	parallelChunks(nx+1, chunkSize, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j <= ny; j++ {
				for k := 0; k < nz; k++ {
					p0, p1 := g.Corner(i, j, k), g.Corner(i, j, k+1)
					gFn := func(t float64) float64 { return s.Evaluate(v3.Vec{X: p0.X, Y: p0.Y, Z: t}) }
					c.mz[(i*(ny+1)+j)*nz+k] = Interpolate(p0.Z, c.V(i, j, k), p1.Z, c.V(i, j, k+1), gFn, g.R.Z)
				}
			}
		}
	})

	return c
}
