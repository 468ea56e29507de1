package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/stencilcalc/internal/compare"
	"github.com/agbru/stencilcalc/internal/grid"
)

// StrategyResult encapsulates the outcome of a single averaging run.
// It serves as the shared domain type between orchestration and presentation layers.
type StrategyResult struct {
	// Name is the registry name of the strategy (e.g., "parallel").
	Name string
	// Output is the destination grid. It is nil if an error occurred.
	Output *grid.Grid
	// Duration is the time taken by the averaging pass.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	// Tolerance is the equivalence tolerance used for the cross-check.
	Tolerance compare.Tolerance
	// Verbose prints the reference and each result grid side by side.
	Verbose bool
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation layer.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer) {
	f(wg, progressChan, numStrategies, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter defines the interface for presenting run results.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-strategy summary table.
	PresentComparisonTable(results []StrategyResult, out io.Writer)

	// PresentMismatches lists the cells where result departs from the reference.
	PresentMismatches(result StrategyResult, report compare.Report, out io.Writer)

	// PresentGrids prints the reference and a result side by side.
	PresentGrids(reference, result StrategyResult, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
