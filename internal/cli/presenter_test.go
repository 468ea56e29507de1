package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/stencilcalc/internal/compare"
	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/orchestration"
	"github.com/agbru/stencilcalc/internal/ui"
)

var testGeometry = grid.MustGeometry(
	[grid.Axes]int{6, 5, 4},
	[grid.Axes]grid.Border{{Low: 1, High: 2}, {Low: 2, High: 1}, {Low: 1, High: 2}},
)

// useNoColor disables ANSI codes for the duration of a test.
func useNoColor(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}

func TestPresentComparisonTable(t *testing.T) {
	useNoColor(t)
	results := []orchestration.StrategyResult{
		{Name: "sequential", Duration: 2 * time.Millisecond},
		{Name: "parallel", Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Comparison Summary", "Strategy", "sequential   2ms", "Success", "Failure (boom)", "< 1µs"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPresentMismatches(t *testing.T) {
	useNoColor(t)
	report := compare.Report{Cells: 120, MaxAbsDiff: 0.5}
	for i := range MaxMismatchesShown + 2 {
		report.Mismatches = append(report.Mismatches, compare.Mismatch{Coord: testGeometry.CoordOf(i), A: 1.5, B: 1})
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentMismatches(orchestration.StrategyResult{Name: "parallel"}, report, &buf)
	out := buf.String()

	for _, want := range []string{"parallel: 12 of 120 cells", "max |diff| 0.5", "(z=0,y=0,x=0): result 1.5, reference 1", "... 2 more"} {
		if !strings.Contains(out, want) {
			t.Errorf("mismatch listing missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "result 1.5"); got != MaxMismatchesShown {
		t.Errorf("listed %d mismatches, want %d", got, MaxMismatchesShown)
	}
}

func TestPresentGrids(t *testing.T) {
	useNoColor(t)
	ref := grid.Sequence(testGeometry, 100)
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentGrids(
		orchestration.StrategyResult{Name: "sequential", Output: ref},
		orchestration.StrategyResult{Name: "parallel", Output: ref.Clone()},
		&buf)
	out := buf.String()

	if !strings.Contains(out, "--- sequential ---") || !strings.Contains(out, "--- parallel ---") {
		t.Errorf("titles missing:\n%s", out)
	}
	if !strings.Contains(out, "100 101 102 103 104 105   /   100 101 102 103 104 105") {
		t.Errorf("first row not side by side:\n%s", out)
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(context.DeadlineExceeded, time.Second, &buf)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}
