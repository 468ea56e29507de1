package format

import (
	"math"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "< 1µs"},
		{500 * time.Nanosecond, "0µs"},
		{250 * time.Microsecond, "250µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := FormatExecutionDuration(tt.d); got != tt.want {
				t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{-3, "-3"},
		{156.5, "156.5"},
		{1.0 / 3.0, "0.333333"},
		{1e20, "1e+20"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := FormatCell(tt.v); got != tt.want {
				t.Errorf("FormatCell(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestCellWidth(t *testing.T) {
	t.Parallel()
	if got := CellWidth([]float64{1, 22, 156.5}, 3); got != 5 {
		t.Errorf("CellWidth = %d, want 5", got)
	}
	if got := CellWidth(nil, 3); got != 3 {
		t.Errorf("CellWidth(nil) = %d, want 3", got)
	}
}

func TestPad(t *testing.T) {
	t.Parallel()
	if got := PadLeft("7", 3); got != "  7" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("long", 2); got != "long" {
		t.Errorf("PadLeft should not truncate, got %q", got)
	}
}
