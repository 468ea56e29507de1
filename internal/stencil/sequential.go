package stencil

import "github.com/agbru/stencilcalc/internal/grid"

// Sequential is the reference strategy: a plain triple loop over the
// interior, z outermost and x innermost.
type Sequential struct{}

// Name returns "sequential".
func (Sequential) Name() string { return "sequential" }

// Average implements Averager.
func (Sequential) Average(src, dst *grid.Grid) error {
	if err := checkShapes(src, dst); err != nil {
		return err
	}
	g := src.Geometry()
	zs, ys, xs := g.InteriorRange(grid.AxisZ), g.InteriorRange(grid.AxisY), g.InteriorRange(grid.AxisX)
	for z := zs.Lo; z < zs.Hi; z++ {
		for y := ys.Lo; y < ys.Hi; y++ {
			for x := xs.Lo; x < xs.Hi; x++ {
				dst.Set(z, y, x, cellMean(src, z, y, x))
			}
		}
	}
	return nil
}
