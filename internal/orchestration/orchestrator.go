package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/stencilcalc/internal/compare"
	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/logging"
	"github.com/agbru/stencilcalc/internal/metrics"
	"github.com/agbru/stencilcalc/internal/stencil"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking strategy
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ReferenceStrategy is the strategy whose output other results are compared
// against when it succeeds.
const ReferenceStrategy = "sequential"

const tracerName = "github.com/agbru/stencilcalc/internal/orchestration"

type executeOptions struct {
	metrics *metrics.Metrics
	logger  logging.Logger
}

// ExecuteOption configures ExecuteStrategies.
type ExecuteOption func(*executeOptions)

// WithMetrics records every run on m.
func WithMetrics(m *metrics.Metrics) ExecuteOption {
	return func(o *executeOptions) { o.metrics = m }
}

// WithLogger logs run start and completion on l.
func WithLogger(l logging.Logger) ExecuteOption {
	return func(o *executeOptions) { o.logger = l }
}

// ExecuteStrategies runs every averager concurrently over src, each into its
// own zero-filled destination.
//
// Results are returned in the order of averagers. A strategy whose context
// is already done when its goroutine starts is not run; its result carries
// ctx.Err(). A single pass cannot be interrupted once started.
func ExecuteStrategies(ctx context.Context, averagers []stencil.Averager, src *grid.Grid, reporter ProgressReporter, out io.Writer, opts ...ExecuteOption) []StrategyResult {
	o := executeOptions{logger: logging.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make([]StrategyResult, len(averagers))
	progressChan := make(chan ProgressUpdate, len(averagers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(averagers), out)

	tracer := otel.Tracer(tracerName)
	geom := src.Geometry()
	for i, avg := range averagers {
		idx, averager := i, avg
		g.Go(func() error {
			results[idx] = runStrategy(ctx, tracer, averager, src, o)
			progressChan <- ProgressUpdate{StrategyIndex: idx, Name: averager.Name(), Err: results[idx].Err}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	o.logger.Debug("strategies finished",
		logging.Int("strategies", len(averagers)),
		logging.String("geometry", geom.String()))
	return results
}

func runStrategy(ctx context.Context, tracer trace.Tracer, averager stencil.Averager, src *grid.Grid, o executeOptions) StrategyResult {
	name := averager.Name()
	geom := src.Geometry()
	_, span := tracer.Start(ctx, "stencil.average", trace.WithAttributes(
		attribute.String("strategy", name),
		attribute.String("geometry", geom.String()),
		attribute.Int("kernel_size", geom.KernelSize()),
		attribute.Int("interior_cells", geom.InteriorCount()),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "not started")
		return StrategyResult{Name: name, Err: err}
	}

	o.logger.Debug("strategy started", logging.String("strategy", name))
	start := time.Now()
	dst, err := stencil.Apply(averager, src)
	elapsed := time.Since(start)

	if err != nil {
		err = apperrors.ComputationError{Strategy: name, Cause: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Error("strategy failed", err, logging.String("strategy", name))
		dst = nil
	} else {
		o.logger.Info("strategy finished",
			logging.String("strategy", name),
			logging.Duration("elapsed", elapsed),
			logging.Int("cells", geom.InteriorCount()))
	}
	if o.metrics != nil {
		o.metrics.ObserveRun(name, elapsed, geom.InteriorCount(), err)
	}
	return StrategyResult{Name: name, Output: dst, Duration: elapsed, Err: err}
}

// Comparison is the cross-check of one successful result against the
// reference.
type Comparison struct {
	Result StrategyResult
	Report compare.Report
	// Err is set when the grids could not be compared at all.
	Err error
}

// Agrees reports whether the result matched the reference everywhere.
func (c Comparison) Agrees() bool { return c.Err == nil && c.Report.Equal() }

// Analysis is the outcome of cross-checking a set of results.
type Analysis struct {
	// Reference is the result others were compared with. It is nil when no
	// strategy succeeded.
	Reference *StrategyResult
	// Comparisons holds one entry per successful non-reference result.
	Comparisons []Comparison
	// Successes counts results without error.
	Successes int
	// FirstError is the first error in results order, if any.
	FirstError error
}

// Mismatched reports whether any comparison found a cell out of tolerance.
func (a Analysis) Mismatched() bool {
	for _, c := range a.Comparisons {
		if !c.Agrees() {
			return true
		}
	}
	return false
}

// Analyze picks the reference result and compares every other successful
// result with it. The reference is the "sequential" result if it succeeded,
// otherwise the first success.
func Analyze(results []StrategyResult, tol compare.Tolerance) Analysis {
	var a Analysis
	refIdx := -1
	for i := range results {
		if results[i].Err != nil {
			if a.FirstError == nil {
				a.FirstError = results[i].Err
			}
			continue
		}
		a.Successes++
		if refIdx < 0 || (results[i].Name == ReferenceStrategy && results[refIdx].Name != ReferenceStrategy) {
			refIdx = i
		}
	}
	if refIdx < 0 {
		return a
	}
	a.Reference = &results[refIdx]

	for i := range results {
		if i == refIdx || results[i].Err != nil {
			continue
		}
		report, err := compare.Compare(results[i].Output, a.Reference.Output, tol)
		a.Comparisons = append(a.Comparisons, Comparison{Result: results[i], Report: report, Err: err})
	}
	return a
}

// AnalyzeResults sorts results, cross-checks them and prints a summary.
//
// Results are sorted successes first, then by duration. The returned exit
// code is ExitSuccess when every successful result agrees with the
// reference, ExitErrorMismatch when any departs from it, and the error
// handler's code when nothing succeeded.
func AnalyzeResults(results []StrategyResult, opts PresentationOptions, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	analysis := Analyze(results, opts.Tolerance)
	presenter.PresentComparisonTable(results, out)

	if analysis.Successes == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the averaging pass.\n")
		return handler.HandleError(analysis.FirstError, 0, out)
	}

	for _, c := range analysis.Comparisons {
		if opts.Verbose && c.Err == nil {
			presenter.PresentGrids(*analysis.Reference, c.Result, out)
		}
		switch {
		case c.Err != nil:
			fmt.Fprintf(out, "\n%s: cannot compare with reference: %v\n", c.Result.Name, c.Err)
		case !c.Report.Equal():
			presenter.PresentMismatches(c.Result, c.Report, out)
		}
	}

	if analysis.Mismatched() {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Results differ from the %s reference beyond tolerance.\n", analysis.Reference.Name)
		return apperrors.ExitErrorMismatch
	}
	if analysis.FirstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Partial Success. %d of %d strategies completed and agree.\n", analysis.Successes, len(results))
		return apperrors.ExitCodeFor(analysis.FirstError)
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. All results agree with the %s reference.\n", analysis.Reference.Name)
	return apperrors.ExitSuccess
}
