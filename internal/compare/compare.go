// Package compare checks two grids for numerical equivalence under an
// absolute plus relative tolerance.
package compare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/grid"
)

// Tolerance bounds the accepted difference between two samples:
// |a-b| <= Atol + Rtol*|b|.
type Tolerance struct {
	Atol float64
	Rtol float64
}

// DefaultTolerance is atol=1e-8, rtol=1e-5.
var DefaultTolerance = Tolerance{Atol: 1e-8, Rtol: 1e-5}

// Close reports whether a is within tolerance of the reference value b.
// The test is asymmetric: the relative term scales with b. Non-finite
// values are never close to anything.
func (t Tolerance) Close(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= t.Atol+t.Rtol*math.Abs(b)
}

// Mismatch is one cell that failed the tolerance test.
type Mismatch struct {
	Coord grid.Coord
	A     float64
	B     float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%v: %g / %g", m.Coord, m.A, m.B)
}

// Report summarizes a grid comparison.
type Report struct {
	// Cells is the number of cells compared.
	Cells int
	// Mismatches lists every cell outside tolerance, in flat order.
	Mismatches []Mismatch
	// MaxAbsDiff is the largest absolute difference over all cells.
	MaxAbsDiff float64
}

// Equal reports whether every cell was within tolerance.
func (r Report) Equal() bool { return len(r.Mismatches) == 0 }

// Compare checks every cell of a against the reference b.
func Compare(a, b *grid.Grid, tol Tolerance) (Report, error) {
	if !a.SameShape(b) {
		return Report{}, apperrors.ShapeError{
			Want:   b.Len(),
			Got:    a.Len(),
			Detail: fmt.Sprintf("%s vs %s", a.Geometry(), b.Geometry()),
		}
	}
	ad, bd := a.Data(), b.Data()
	report := Report{Cells: len(ad)}
	if len(ad) > 0 {
		report.MaxAbsDiff = floats.Distance(ad, bd, math.Inf(1))
	}
	geom := a.Geometry()
	for i := range ad {
		if !tol.Close(ad[i], bd[i]) {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Coord: geom.CoordOf(i),
				A:     ad[i],
				B:     bd[i],
			})
		}
	}
	return report, nil
}

// AllClose reports whether a and b have the same length and every a[i] is
// within tolerance of b[i].
func AllClose(a, b []float64, tol Tolerance) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !tol.Close(a[i], b[i]) {
			return false
		}
	}
	return true
}
