package tui

import (
	"time"

	"github.com/agbru/stencilcalc/internal/orchestration"
	"github.com/agbru/stencilcalc/internal/sysmon"
)

// StrategyDoneMsg reports that one strategy finished.
type StrategyDoneMsg struct {
	orchestration.ProgressUpdate
}

// ComparisonResultsMsg carries the sorted results for the summary line.
type ComparisonResultsMsg struct {
	Results []orchestration.StrategyResult
}

// ErrorMsg reports that no strategy succeeded.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// RunCompleteMsg carries the cross-check once every strategy returned.
type RunCompleteMsg struct {
	Analysis orchestration.Analysis
	ExitCode int
}

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}

// TickMsg triggers a load sample while the run is in progress.
type TickMsg time.Time

// SysStatsMsg carries a system load sample.
type SysStatsMsg struct {
	sysmon.Stats
}
