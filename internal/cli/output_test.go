package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/stencilcalc/internal/compare"
	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/ui"
)

func TestWriteSideBySide_Layout(t *testing.T) {
	useNoColor(t)
	ref := grid.Sequence(testGeometry, 0)
	var buf bytes.Buffer
	WriteSideBySide(&buf, compare.DefaultTolerance, "ref", ref, "res", ref.Clone())

	ext := testGeometry.Extents()
	rows := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, columnSeparator) && !strings.Contains(line, "---") {
			rows++
		}
	}
	if want := ext[grid.AxisZ] * ext[grid.AxisY]; rows != want {
		t.Errorf("printed %d data rows, want %d", rows, want)
	}
}

func TestWriteSideBySide_HighlightsMismatch(t *testing.T) {
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.DarkTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })

	ref := grid.Sequence(testGeometry, 0)
	res := ref.Clone()
	res.Set(1, 2, 2, 999)
	var buf bytes.Buffer
	WriteSideBySide(&buf, compare.DefaultTolerance, "ref", ref, "res", res)

	if !strings.Contains(buf.String(), ui.DarkTheme.Error+"999"+ui.DarkTheme.Reset) {
		t.Errorf("mismatching cell should be highlighted:\n%q", buf.String())
	}
}

func TestWriteSideBySide_DifferentShapes(t *testing.T) {
	useNoColor(t)
	other := grid.MustGeometry([grid.Axes]int{2, 2, 2}, [grid.Axes]grid.Border{})
	var buf bytes.Buffer
	WriteSideBySide(&buf, compare.DefaultTolerance, "ref", grid.New(testGeometry), "res", grid.New(other))

	out := buf.String()
	if !strings.Contains(out, "ref: "+testGeometry.String()) || !strings.Contains(out, "res: "+other.String()) {
		t.Errorf("shapes should be printed separately:\n%s", out)
	}
}
