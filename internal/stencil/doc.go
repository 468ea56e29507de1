// Package stencil computes the box average of a 3-axis grid.
//
// Each interior destination cell receives the mean of the source cells in
// the axis-aligned box [z-Lz, z+Hz] x [y-Ly, y+Hy] x [x-Lx, x+Hx], where
// (L, H) are the per-axis border widths. Border cells of the destination are
// never written.
//
// Two strategies implement Averager: Sequential walks the interior in
// z, y, x order; Parallel flattens the interior into independent work items
// and evaluates them on a bounded goroutine pool. Both call the same kernel
// body, which sums the box in a fixed z, y, x order, so their outputs are
// bit-for-bit identical.
package stencil
