package compare

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/grid"
)

func TestTolerance_Close(t *testing.T) {
	t.Parallel()
	tol := DefaultTolerance
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 156.5, 156.5, true},
		{"within relative", 100.0005, 100, true},
		{"outside relative", 100.01, 100, false},
		{"within absolute near zero", 5e-9, 0, true},
		{"outside absolute near zero", 1e-7, 0, false},
		{"far from reference", 1e-5, 1, false},
		{"nan", math.NaN(), 1, false},
		{"nan reference", 1, math.NaN(), false},
		{"infinities", math.Inf(1), math.Inf(1), false},
		{"infinite reference", 1, math.Inf(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tol.Close(tt.a, tt.b); got != tt.want {
				t.Errorf("Close(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func geometry() grid.Geometry {
	return grid.MustGeometry([grid.Axes]int{4, 3, 2}, [grid.Axes]grid.Border{{Low: 1, High: 1}, {Low: 1, High: 1}, {Low: 0, High: 0}})
}

func TestCompare(t *testing.T) {
	t.Parallel()
	ref := grid.Sequence(geometry(), 100)
	got := ref.Clone()

	report, err := Compare(got, ref, DefaultTolerance)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if !report.Equal() || report.Cells != 24 || report.MaxAbsDiff != 0 {
		t.Errorf("identical grids: report = %+v", report)
	}

	got.Set(1, 2, 3, ref.At(1, 2, 3)+0.5)
	got.Set(0, 0, 0, ref.At(0, 0, 0)-0.25)
	report, err = Compare(got, ref, DefaultTolerance)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if report.Equal() {
		t.Fatal("report should not be equal after perturbation")
	}
	if len(report.Mismatches) != 2 {
		t.Fatalf("mismatches = %v, want 2", report.Mismatches)
	}
	first := report.Mismatches[0]
	if first.Coord != (grid.Coord{}) || first.B != 100 || first.A != 99.75 {
		t.Errorf("first mismatch = %+v", first)
	}
	if report.Mismatches[1].Coord != (grid.Coord{Z: 1, Y: 2, X: 3}) {
		t.Errorf("second mismatch coord = %v", report.Mismatches[1].Coord)
	}
	if report.MaxAbsDiff != 0.5 {
		t.Errorf("MaxAbsDiff = %v, want 0.5", report.MaxAbsDiff)
	}
}

func TestCompare_ShapeMismatch(t *testing.T) {
	t.Parallel()
	a := grid.New(geometry())
	b := grid.New(grid.MustGeometry([grid.Axes]int{2, 3, 4}, [grid.Axes]grid.Border{{Low: 1, High: 1}, {Low: 1, High: 1}, {Low: 0, High: 0}}))
	_, err := Compare(a, b, DefaultTolerance)
	var shapeErr apperrors.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Errorf("expected ShapeError, got %v", err)
	}
}

func TestAllClose(t *testing.T) {
	t.Parallel()
	if !AllClose([]float64{1, 2, 3}, []float64{1, 2, 3.000001}, DefaultTolerance) {
		t.Error("values within tolerance should be close")
	}
	if AllClose([]float64{1, 2}, []float64{1, 2, 3}, DefaultTolerance) {
		t.Error("different lengths should not be close")
	}
	if AllClose([]float64{1, 2, 4}, []float64{1, 2, 3}, DefaultTolerance) {
		t.Error("values outside tolerance should not be close")
	}
	if !AllClose(nil, nil, DefaultTolerance) {
		t.Error("empty slices should be close")
	}
}

func TestMismatch_String(t *testing.T) {
	t.Parallel()
	m := Mismatch{Coord: grid.Coord{Z: 1, Y: 2, X: 3}, A: 1.5, B: 2}
	if got, want := m.String(), "(z=1,y=2,x=3): 1.5 / 2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTolerance_Asymmetric(t *testing.T) {
	t.Parallel()
	tol := Tolerance{Rtol: 0.095}
	if !tol.Close(1, 1.1) {
		t.Error("Close(1, 1.1) should hold: relative term scales with the reference 1.1")
	}
	if tol.Close(1.1, 1) {
		t.Error("Close(1.1, 1) should fail: relative term scales with the reference 1")
	}
}
