package grid

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/stencilcalc/internal/errors"
)

// Axes is the number of grid dimensions.
const Axes = 3

// Axis indices, fastest-varying first.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

var axisNames = [Axes]string{"x", "y", "z"}

// Border holds the widths excluded at the low and high end of one axis.
type Border struct {
	Low  int
	High int
}

// Width returns the stencil span along the axis, 1 + Low + High.
func (b Border) Width() int { return 1 + b.Low + b.High }

// Range is a half-open index interval [Lo, Hi).
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of indices in the range, 0 when empty.
func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}
	return r.Hi - r.Lo
}

// Empty reports whether the range holds no index.
func (r Range) Empty() bool { return r.Hi <= r.Lo }

// Contains reports whether i lies in [Lo, Hi).
func (r Range) Contains(i int) bool { return i >= r.Lo && i < r.Hi }

// Coord addresses one cell, slowest axis first.
type Coord struct {
	Z, Y, X int
}

func (c Coord) String() string { return fmt.Sprintf("(z=%d,y=%d,x=%d)", c.Z, c.Y, c.X) }

// Geometry is the immutable shape and border configuration shared by the
// source grid, the destination grid and every averaging strategy.
// The zero value has no cells.
type Geometry struct {
	extents [Axes]int
	borders [Axes]Border
}

// NewGeometry validates extents and borders and returns the geometry.
// Every extent must be strictly positive and every border width
// non-negative. Borders that cover a whole axis are accepted; such an axis
// simply has an empty interior.
func NewGeometry(extents [Axes]int, borders [Axes]Border) (Geometry, error) {
	for axis := 0; axis < Axes; axis++ {
		if extents[axis] <= 0 {
			return Geometry{}, apperrors.ValidationError{
				Field:   "extents",
				Message: fmt.Sprintf("axis %s must be strictly positive, got %d", axisNames[axis], extents[axis]),
			}
		}
		if borders[axis].Low < 0 || borders[axis].High < 0 {
			return Geometry{}, apperrors.ValidationError{
				Field: "borders",
				Message: fmt.Sprintf("axis %s border (%d,%d) must be non-negative",
					axisNames[axis], borders[axis].Low, borders[axis].High),
			}
		}
	}
	cells, kernel := 1, 1
	for axis := 0; axis < Axes; axis++ {
		if cells > math.MaxInt/extents[axis] {
			return Geometry{}, apperrors.ValidationError{
				Field:   "extents",
				Message: fmt.Sprintf("cell count of %dx%dx%d overflows int", extents[AxisX], extents[AxisY], extents[AxisZ]),
			}
		}
		cells *= extents[axis]
		b := borders[axis]
		if b.Low > math.MaxInt-1-b.High || kernel > math.MaxInt/b.Width() {
			return Geometry{}, apperrors.ValidationError{
				Field:   "borders",
				Message: "kernel size overflows int",
			}
		}
		kernel *= b.Width()
	}
	return Geometry{extents: extents, borders: borders}, nil
}

// MustGeometry is like NewGeometry but panics on invalid input. It is meant
// for fixed configurations known to be valid.
func MustGeometry(extents [Axes]int, borders [Axes]Border) Geometry {
	g, err := NewGeometry(extents, borders)
	if err != nil {
		panic(err)
	}
	return g
}

// Extents returns the per-axis extents, x first.
func (g Geometry) Extents() [Axes]int { return g.extents }

// Borders returns the per-axis border pairs, x first.
func (g Geometry) Borders() [Axes]Border { return g.borders }

// Len returns the total number of cells, the product of the extents.
func (g Geometry) Len() int {
	return g.extents[AxisX] * g.extents[AxisY] * g.extents[AxisZ]
}

// KernelSize returns the number of source cells summed per output cell,
// the product over axes of 1 + Low + High.
func (g Geometry) KernelSize() int {
	size := 1
	for _, b := range g.borders {
		size *= b.Width()
	}
	return size
}

// InteriorRange returns [Low, extent-High) for the given axis. The range is
// empty when the borders consume the whole axis.
func (g Geometry) InteriorRange(axis int) Range {
	if axis < 0 || axis >= Axes {
		panic(fmt.Sprintf("grid: axis %d out of range", axis))
	}
	return Range{Lo: g.borders[axis].Low, Hi: g.extents[axis] - g.borders[axis].High}
}

// InteriorExtents returns the interior length of each axis, x first.
func (g Geometry) InteriorExtents() [Axes]int {
	var n [Axes]int
	for axis := 0; axis < Axes; axis++ {
		n[axis] = g.InteriorRange(axis).Len()
	}
	return n
}

// InteriorCount returns the number of interior cells.
func (g Geometry) InteriorCount() int {
	n := g.InteriorExtents()
	return n[AxisX] * n[AxisY] * n[AxisZ]
}

// InteriorCoord maps a linear interior index in [0, InteriorCount()) to its
// cell coordinate, x varying fastest.
func (g Geometry) InteriorCoord(i int) Coord {
	n := g.InteriorExtents()
	x := i % n[AxisX]
	i /= n[AxisX]
	y := i % n[AxisY]
	z := i / n[AxisY]
	return Coord{
		Z: z + g.borders[AxisZ].Low,
		Y: y + g.borders[AxisY].Low,
		X: x + g.borders[AxisX].Low,
	}
}

// IsInterior reports whether c lies inside the interior on every axis.
func (g Geometry) IsInterior(c Coord) bool {
	return g.InteriorRange(AxisZ).Contains(c.Z) &&
		g.InteriorRange(AxisY).Contains(c.Y) &&
		g.InteriorRange(AxisX).Contains(c.X)
}

// Offset returns the flat buffer offset of (z, y, x).
func (g Geometry) Offset(z, y, x int) int {
	return (z*g.extents[AxisY]+y)*g.extents[AxisX] + x
}

// CoordOf is the inverse of Offset.
func (g Geometry) CoordOf(offset int) Coord {
	nx, ny := g.extents[AxisX], g.extents[AxisY]
	return Coord{Z: offset / (nx * ny), Y: (offset / nx) % ny, X: offset % nx}
}

// String renders the geometry as "6x5x4 borders x(1,2) y(2,1) z(1,2)".
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%dx%d borders x(%d,%d) y(%d,%d) z(%d,%d)",
		g.extents[AxisX], g.extents[AxisY], g.extents[AxisZ],
		g.borders[AxisX].Low, g.borders[AxisX].High,
		g.borders[AxisY].Low, g.borders[AxisY].High,
		g.borders[AxisZ].Low, g.borders[AxisZ].High)
}
