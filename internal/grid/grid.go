package grid

import (
	apperrors "github.com/agbru/stencilcalc/internal/errors"
)

// Grid is a flat buffer of samples viewed through a Geometry.
// A Grid owns its buffer; callers that need to keep data independent of
// later writes should Clone it.
type Grid struct {
	geom Geometry
	data []float64
}

// New allocates a zero-filled grid for geom.
func New(geom Geometry) *Grid {
	return &Grid{geom: geom, data: make([]float64, geom.Len())}
}

// FromSlice wraps data as a grid of shape geom. It fails when the buffer
// length differs from the number of cells geom describes.
func FromSlice(geom Geometry, data []float64) (*Grid, error) {
	if len(data) != geom.Len() {
		return nil, apperrors.ShapeError{Want: geom.Len(), Got: len(data)}
	}
	return &Grid{geom: geom, data: data}, nil
}

// Sequence returns a grid whose cells hold start, start+1, start+2, ...
// in flat order (x fastest).
func Sequence(geom Geometry, start float64) *Grid {
	g := New(geom)
	for i := range g.data {
		g.data[i] = start + float64(i)
	}
	return g
}

// Geometry returns the grid's shape.
func (g *Grid) Geometry() Geometry { return g.geom }

// Data exposes the underlying buffer.
func (g *Grid) Data() []float64 { return g.data }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// At returns the sample at (z, y, x).
func (g *Grid) At(z, y, x int) float64 { return g.data[g.geom.Offset(z, y, x)] }

// Set stores v at (z, y, x).
func (g *Grid) Set(z, y, x int, v float64) { g.data[g.geom.Offset(z, y, x)] = v }

// Fill overwrites every cell with v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return &Grid{geom: g.geom, data: data}
}

// SameShape reports whether g and other share extents and borders.
func (g *Grid) SameShape(other *Grid) bool {
	return g.geom == other.geom && len(g.data) == len(other.data)
}
