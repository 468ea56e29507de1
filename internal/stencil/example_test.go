package stencil_test

import (
	"fmt"

	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/stencil"
)

// ExampleApply averages the 6x5x4 sample grid with both strategies.
func ExampleApply() {
	geom := grid.MustGeometry([grid.Axes]int{6, 5, 4}, [grid.Axes]grid.Border{{Low: 1, High: 2}, {Low: 2, High: 1}, {Low: 1, High: 2}})
	src := grid.Sequence(geom, 100)

	seq, _ := stencil.Apply(stencil.Sequential{}, src)
	par, _ := stencil.Apply(stencil.Parallel{}, src)

	fmt.Println(geom.KernelSize())
	fmt.Println(seq.At(1, 2, 2), par.At(1, 2, 2))
	// Output:
	// 64
	// 156.5 156.5
}

// ExampleNewDefaultFactory lists the registered strategies.
func ExampleNewDefaultFactory() {
	f := stencil.NewDefaultFactory(0, 0)
	fmt.Println(f.List())
	// Output:
	// [parallel sequential]
}
