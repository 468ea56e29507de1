package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/stencilcalc/internal/compare"
	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter forwards progress updates as StrategyDoneMsg.
type TUIProgressReporter struct {
	ref *programRef
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress implements orchestration.ProgressReporter.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for update := range progressChan {
		t.ref.Send(StrategyDoneMsg{ProgressUpdate: update})
	}
}

// TUIResultPresenter sends results to the browser instead of writing them.
// Grids and mismatches are rendered by the browser itself.
type TUIResultPresenter struct {
	ref *programRef
}

var (
	_ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)
	_ orchestration.ErrorHandler    = (*TUIResultPresenter)(nil)
)

// PresentComparisonTable implements orchestration.ResultPresenter.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.StrategyResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: append([]orchestration.StrategyResult(nil), results...)})
}

// PresentMismatches implements orchestration.ResultPresenter.
func (t *TUIResultPresenter) PresentMismatches(_ orchestration.StrategyResult, _ compare.Report, _ io.Writer) {
}

// PresentGrids implements orchestration.ResultPresenter.
func (t *TUIResultPresenter) PresentGrids(_, _ orchestration.StrategyResult, _ io.Writer) {
}

// HandleError sends an ErrorMsg and returns the exit code for err.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration})
	return apperrors.HandleComputationError(err, duration, io.Discard)
}
