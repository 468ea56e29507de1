package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/stencilcalc/internal/compare"
	"github.com/agbru/stencilcalc/internal/format"
	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/ui"
)

// minCellWidth is the narrowest column used when printing grids.
const minCellWidth = 3

const columnSeparator = "   /   "

// WriteSideBySide prints left and right as slices stacked along z, each row
// of left followed by the same row of right. Border cells are dimmed and
// right-hand cells outside tol of their left counterpart are highlighted.
// Grids of different shape are printed one after the other.
func WriteSideBySide(out io.Writer, tol compare.Tolerance, leftTitle string, left *grid.Grid, rightTitle string, right *grid.Grid) {
	if !left.SameShape(right) {
		fmt.Fprintf(out, "%s: %s\n", leftTitle, left.Geometry())
		WriteGrid(out, left)
		fmt.Fprintf(out, "%s: %s\n", rightTitle, right.Geometry())
		WriteGrid(out, right)
		return
	}

	geom := left.Geometry()
	ext := geom.Extents()
	width := max(format.CellWidth(left.Data(), minCellWidth), format.CellWidth(right.Data(), minCellWidth))
	rowWidth := ext[grid.AxisX]*(width+1) - 1

	fmt.Fprintf(out, "%s%s%s\n\n",
		ui.Paint(ui.ColorBold(), format.PadRight(centerTitle(leftTitle, rowWidth), rowWidth)),
		columnSeparator,
		ui.Paint(ui.ColorBold(), centerTitle(rightTitle, rowWidth)))

	for z := range ext[grid.AxisZ] {
		for y := range ext[grid.AxisY] {
			var b strings.Builder
			writeRow(&b, left, z, y, width, nil, tol)
			b.WriteString(columnSeparator)
			writeRow(&b, right, z, y, width, left, tol)
			fmt.Fprintln(out, b.String())
		}
		fmt.Fprintln(out)
	}
}

// WriteGrid prints g slice by slice.
func WriteGrid(out io.Writer, g *grid.Grid) {
	ext := g.Geometry().Extents()
	width := format.CellWidth(g.Data(), minCellWidth)
	for z := range ext[grid.AxisZ] {
		for y := range ext[grid.AxisY] {
			var b strings.Builder
			writeRow(&b, g, z, y, width, nil, compare.Tolerance{})
			fmt.Fprintln(out, b.String())
		}
		fmt.Fprintln(out)
	}
}

// writeRow appends row (z, y) of g. When ref is non-nil, cells outside tol
// of ref are colored as errors.
func writeRow(b *strings.Builder, g *grid.Grid, z, y, width int, ref *grid.Grid, tol compare.Tolerance) {
	geom := g.Geometry()
	nx := geom.Extents()[grid.AxisX]
	for x := range nx {
		if x > 0 {
			b.WriteByte(' ')
		}
		v := g.At(z, y, x)
		cell := format.PadLeft(format.FormatCell(v), width)
		switch {
		case ref != nil && !tol.Close(v, ref.At(z, y, x)):
			cell = ui.Paint(ui.ColorError(), cell)
		case !geom.IsInterior(grid.Coord{Z: z, Y: y, X: x}):
			cell = ui.Paint(ui.ColorSecondary(), cell)
		}
		b.WriteString(cell)
	}
}

func centerTitle(title string, width int) string {
	title = "--- " + title + " ---"
	pad := (width - len([]rune(title))) / 2
	if pad <= 0 {
		return title
	}
	return strings.Repeat(" ", pad) + title
}
