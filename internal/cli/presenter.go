package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/stencilcalc/internal/compare"
	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/format"
	"github.com/agbru/stencilcalc/internal/orchestration"
	"github.com/agbru/stencilcalc/internal/ui"
)

// MaxMismatchesShown caps the per-strategy mismatch listing.
const MaxMismatchesShown = 10

// CLIResultPresenter renders results as colorized terminal text.
type CLIResultPresenter struct {
	// Tolerance decides which cells PresentGrids highlights. The zero value
	// means compare.DefaultTolerance.
	Tolerance compare.Tolerance
}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable prints one row per strategy with its duration and
// status. Padding is computed on the uncolored text so ANSI codes do not
// break alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.StrategyResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	nameWidth, durWidth := len("Strategy"), len("Duration")
	for _, res := range results {
		nameWidth = max(nameWidth, len(res.Name))
		durWidth = max(durWidth, len([]rune(format.FormatExecutionDuration(res.Duration))))
	}

	fmt.Fprintf(out, "%s   %s   %s\n",
		ui.Paint(ui.ColorUnderline(), format.PadRight("Strategy", nameWidth)),
		ui.Paint(ui.ColorUnderline(), format.PadRight("Duration", durWidth)),
		ui.Paint(ui.ColorUnderline(), "Status"))

	for _, res := range results {
		status := ui.Paint(ui.ColorSuccess(), "✅ Success")
		if res.Err != nil {
			status = ui.Paint(ui.ColorError(), fmt.Sprintf("❌ Failure (%v)", res.Err))
		}
		fmt.Fprintf(out, "%s   %s   %s\n",
			ui.Paint(ui.ColorPrimary(), format.PadRight(res.Name, nameWidth)),
			ui.Paint(ui.ColorWarning(), format.PadRight(format.FormatExecutionDuration(res.Duration), durWidth)),
			status)
	}
}

// PresentMismatches lists up to MaxMismatchesShown cells where result departs
// from the reference.
func (CLIResultPresenter) PresentMismatches(result orchestration.StrategyResult, report compare.Report, out io.Writer) {
	fmt.Fprintf(out, "\n%s%s%s: %d of %d cells outside tolerance (max |diff| %s)\n",
		ui.ColorError(), result.Name, ui.ColorReset(),
		len(report.Mismatches), report.Cells, format.FormatCell(report.MaxAbsDiff))
	for i, m := range report.Mismatches {
		if i == MaxMismatchesShown {
			fmt.Fprintf(out, "  ... %d more\n", len(report.Mismatches)-MaxMismatchesShown)
			break
		}
		fmt.Fprintf(out, "  %v: result %s, reference %s\n", m.Coord, format.FormatCell(m.A), format.FormatCell(m.B))
	}
}

// PresentGrids prints reference and result side by side, one z-slice at a
// time.
func (p CLIResultPresenter) PresentGrids(reference, result orchestration.StrategyResult, out io.Writer) {
	tol := p.Tolerance
	if tol == (compare.Tolerance{}) {
		tol = compare.DefaultTolerance
	}
	fmt.Fprintln(out)
	WriteSideBySide(out, tol, reference.Name, reference.Output, result.Name, result.Output)
}

// HandleError prints a status line for err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleComputationError(err, duration, out)
}
