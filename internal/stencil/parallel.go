package stencil

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/stencilcalc/internal/grid"
)

// chunksPerWorker controls how finely the interior is split when ChunkSize
// is left at zero. Several chunks per worker keeps the pool busy when
// chunks finish at different speeds.
const chunksPerWorker = 4

// Parallel evaluates interior cells concurrently. The interior is flattened
// into InteriorCount() work items, one per output cell, which are grouped
// into contiguous chunks and run on at most Workers goroutines. Items carry
// no ordering guarantee relative to each other; each writes only its own
// destination cell and only reads the source.
type Parallel struct {
	// Workers bounds the number of concurrent goroutines. Zero or negative
	// selects runtime.GOMAXPROCS(0).
	Workers int
	// ChunkSize is the number of work items per goroutine task. Zero or
	// negative derives it from the interior size and worker count.
	ChunkSize int
}

// Name returns "parallel".
func (Parallel) Name() string { return "parallel" }

// Average implements Averager.
func (p Parallel) Average(src, dst *grid.Grid) error {
	if err := checkShapes(src, dst); err != nil {
		return err
	}
	g := src.Geometry()
	total := g.InteriorCount()
	if total == 0 {
		return nil
	}

	workers := p.workers()
	chunk := p.chunkSize(total, workers)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for start := 0; start < total; start += chunk {
		end := min(start+chunk, total)
		eg.Go(func() error {
			for i := start; i < end; i++ {
				c := g.InteriorCoord(i)
				dst.Set(c.Z, c.Y, c.X, cellMean(src, c.Z, c.Y, c.X))
			}
			return nil
		})
	}
	return eg.Wait()
}

func (p Parallel) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (p Parallel) chunkSize(total, workers int) int {
	if p.ChunkSize > 0 {
		return p.ChunkSize
	}
	chunk := (total + workers*chunksPerWorker - 1) / (workers * chunksPerWorker)
	return max(chunk, 1)
}
