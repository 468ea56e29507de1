package tui

import (
	"strings"

	"github.com/agbru/stencilcalc/internal/compare"
	"github.com/agbru/stencilcalc/internal/format"
	"github.com/agbru/stencilcalc/internal/grid"
)

const minCellWidth = 3

// renderSlice draws slice z of g, one y-row per line. When ref is non-nil
// cells outside tol of ref use the mismatch style; otherwise border cells
// are dimmed and interior cells colored.
func renderSlice(g *grid.Grid, z int, ref *grid.Grid, tol compare.Tolerance, width int) string {
	geom := g.Geometry()
	ext := geom.Extents()
	var b strings.Builder
	for y := range ext[grid.AxisY] {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range ext[grid.AxisX] {
			if x > 0 {
				b.WriteByte(' ')
			}
			v := g.At(z, y, x)
			cell := format.PadLeft(format.FormatCell(v), width)
			switch {
			case ref != nil && !tol.Close(v, ref.At(z, y, x)):
				cell = mismatchCellStyle.Render(cell)
			case geom.IsInterior(grid.Coord{Z: z, Y: y, X: x}):
				cell = interiorCellStyle.Render(cell)
			default:
				cell = haloCellStyle.Render(cell)
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}

// sliceWidth returns the cell width that fits every value of the given grids.
func sliceWidth(grids ...*grid.Grid) int {
	w := minCellWidth
	for _, g := range grids {
		if g != nil {
			w = max(w, format.CellWidth(g.Data(), minCellWidth))
		}
	}
	return w
}

// sliceMismatches counts mismatches of report that lie in slice z.
func sliceMismatches(report compare.Report, z int) int {
	n := 0
	for _, m := range report.Mismatches {
		if m.Coord.Z == z {
			n++
		}
	}
	return n
}
