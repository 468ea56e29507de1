package format

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// CellPrecision is the number of significant digits printed per cell.
const CellPrecision = 6

// FormatCell renders a grid value compactly. Integral values print without
// a fractional part.
func FormatCell(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', CellPrecision, 64)
}

// CellWidth returns the widest FormatCell rendering among values, and at
// least minWidth.
func CellWidth(values []float64, minWidth int) int {
	w := minWidth
	for _, v := range values {
		w = max(w, utf8.RuneCountInString(FormatCell(v)))
	}
	return w
}

// PadLeft right-aligns s in a field of width runes.
func PadLeft(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}

// PadRight left-aligns s in a field of width runes.
func PadRight(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
