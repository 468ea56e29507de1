//go:generate mockgen -source=averager.go -destination=mocks/mock_averager.go -package=mocks

package stencil

import (
	"fmt"

	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/grid"
)

// Averager writes the box average of src into the interior cells of dst.
// Implementations must write every interior cell exactly once and leave
// border cells untouched.
type Averager interface {
	// Name returns the registry name of the strategy.
	Name() string
	// Average fills dst from src. src and dst must share a geometry.
	Average(src, dst *grid.Grid) error
}

// Apply allocates a zero-filled destination shaped like src and averages
// into it.
func Apply(a Averager, src *grid.Grid) (*grid.Grid, error) {
	dst := grid.New(src.Geometry())
	if err := a.Average(src, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func checkShapes(src, dst *grid.Grid) error {
	if !src.SameShape(dst) {
		return apperrors.ShapeError{
			Want:   src.Len(),
			Got:    dst.Len(),
			Detail: fmt.Sprintf("source %s, destination %s", src.Geometry(), dst.Geometry()),
		}
	}
	return nil
}

// cellMean returns the mean of the stencil box centred on (z, y, x).
// The summation order (i over z, j over y, k over x) is part of the
// contract: every strategy must go through this function.
func cellMean(src *grid.Grid, z, y, x int) float64 {
	g := src.Geometry()
	b := g.Borders()
	data := src.Data()

	var sum float64
	for i := z - b[grid.AxisZ].Low; i <= z+b[grid.AxisZ].High; i++ {
		for j := y - b[grid.AxisY].Low; j <= y+b[grid.AxisY].High; j++ {
			row := g.Offset(i, j, 0)
			for k := x - b[grid.AxisX].Low; k <= x+b[grid.AxisX].High; k++ {
				sum += data[row+k]
			}
		}
	}
	return sum / float64(g.KernelSize())
}
