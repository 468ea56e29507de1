package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/agbru/stencilcalc/internal/cli"
	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/metrics"
	"github.com/agbru/stencilcalc/internal/orchestration"
	"github.com/agbru/stencilcalc/internal/stencil"
	"github.com/agbru/stencilcalc/internal/ui"
)

// runStencil executes the selected strategies in the terminal.
func (a *Application) runStencil(ctx context.Context, out io.Writer) int {
	geom, err := a.Config.Geometry()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	averagers := orchestration.GetStrategiesToRun(a.Config.Algo, a.Factory)
	if len(averagers) == 0 {
		fmt.Fprintf(a.ErrWriter, "Configuration error: no strategy matches %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		printExecutionConfig(geom, averagers, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	opts := []orchestration.ExecuteOption{orchestration.WithLogger(a.Logger)}
	var m *metrics.Metrics
	if a.Config.Metrics {
		m = metrics.New()
		opts = append(opts, orchestration.WithMetrics(m))
	}

	src := grid.Sequence(geom, a.Config.Start)
	a.Logger.Debug("source generated")
	results := orchestration.ExecuteStrategies(ctx, averagers, src, progressReporter, progressOut, opts...)

	exitCode := a.analyze(results, out)

	if m != nil {
		analysis := orchestration.Analyze(results, a.Config.Tolerance())
		for _, c := range analysis.Comparisons {
			m.AddMismatches(c.Result.Name, len(c.Report.Mismatches))
		}
		fmt.Fprintln(out)
		if err := m.WriteText(out); err != nil {
			a.Logger.Error("writing metrics", err)
		}
	}
	return exitCode
}

// analyze cross-checks results. In quiet mode only a single status line is
// printed.
func (a *Application) analyze(results []orchestration.StrategyResult, out io.Writer) int {
	presenter := cli.CLIResultPresenter{Tolerance: a.Config.Tolerance()}
	opts := orchestration.PresentationOptions{
		Tolerance: a.Config.Tolerance(),
		Verbose:   a.Config.Verbose,
	}
	if !a.Config.Quiet {
		return orchestration.AnalyzeResults(results, opts, presenter, presenter, out)
	}

	exitCode := orchestration.AnalyzeResults(results, opts, presenter, presenter, io.Discard)
	switch exitCode {
	case apperrors.ExitSuccess:
		fmt.Fprintf(out, "%sOK%s %d strategies agree\n", ui.ColorSuccess(), ui.ColorReset(), len(results))
	case apperrors.ExitErrorMismatch:
		fmt.Fprintf(out, "%sMISMATCH%s\n", ui.ColorError(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sFAILURE%s exit code %d\n", ui.ColorError(), ui.ColorReset(), exitCode)
	}
	return exitCode
}

func printExecutionConfig(geom grid.Geometry, averagers []stencil.Averager, out io.Writer) {
	names := make([]string, len(averagers))
	for i, avg := range averagers {
		names[i] = avg.Name()
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Geometry:    %s%s%s\n", ui.ColorPrimary(), geom, ui.ColorReset())
	fmt.Fprintf(out, "Kernel size: %d\n", geom.KernelSize())
	fmt.Fprintf(out, "Interior:    %d of %d cells\n", geom.InteriorCount(), geom.Len())
	fmt.Fprintf(out, "Strategies:  %s\n\n", strings.Join(names, ", "))
}
