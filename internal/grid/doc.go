// Package grid describes the shape of a 3-axis sample grid and the flat,
// row-major buffer that holds its samples.
//
// Axis 0 (x) varies fastest and axis 2 (z) slowest, so the cell (z, y, x)
// lives at offset ((z*ny + y)*nx + x). Each axis carries a (low, high)
// border pair; cells inside the borders on every axis form the interior,
// which is the only region a stencil pass writes.
package grid
