package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/stencilcalc/internal/compare"
	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/format"
	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/orchestration"
	"github.com/agbru/stencilcalc/internal/stencil"
	"github.com/agbru/stencilcalc/internal/sysmon"
)

// sampleInterval is the load sampling period while strategies run.
const sampleInterval = 500 * time.Millisecond

// Config describes the run the browser executes.
type Config struct {
	Averagers []stencil.Averager
	Source    *grid.Grid
	Tolerance compare.Tolerance
	// Options are passed through to orchestration.ExecuteStrategies.
	Options []orchestration.ExecuteOption
}

// ExecutionState holds the execution-related fields of a browser session.
type ExecutionState struct {
	ctx      context.Context
	cancel   context.CancelFunc
	finished int
	failed   int
	done     bool
	exitCode int
	err      error
}

// Model is the root bubbletea model of the slice browser.
type Model struct {
	keymap KeyMap
	help   help.Model

	ExecutionState

	config   Config
	ref      *programRef
	results  []orchestration.StrategyResult
	analysis orchestration.Analysis

	// strategy indexes analysis.Comparisons; slice is the z index shown.
	strategy int
	slice    int
	width    int
	height   int
	load     sysmon.Stats
	sampled  bool
}

// NewModel creates a browser for cfg. The run starts from Init.
func NewModel(parentCtx context.Context, cfg Config) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		keymap: DefaultKeyMap(),
		help:   help.New(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		config: cfg,
		ref:    &programRef{},
	}
}

// Init starts the run and the context watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ref, m.ctx, m.config),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StrategyDoneMsg:
		m.finished++
		if msg.Err != nil {
			m.failed++
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.load = msg.Stats
		m.sampled = true
		return m, nil

	case ComparisonResultsMsg:
		m.results = msg.Results
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case RunCompleteMsg:
		m.done = true
		m.analysis = msg.Analysis
		m.exitCode = msg.ExitCode
		m.strategy, m.slice = 0, 0
		return m, nil

	case ContextCancelledMsg:
		if m.done {
			return m, nil
		}
		m.done = true
		m.err = msg.Err
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.NextSlice):
		m.slice = wrap(m.slice+1, m.sliceCount())

	case key.Matches(msg, m.keymap.PrevSlice):
		m.slice = wrap(m.slice-1, m.sliceCount())

	case key.Matches(msg, m.keymap.NextStrategy):
		m.strategy = wrap(m.strategy+1, len(m.analysis.Comparisons))

	case key.Matches(msg, m.keymap.PrevStrategy):
		m.strategy = wrap(m.strategy-1, len(m.analysis.Comparisons))
	}
	return m, nil
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (m Model) sliceCount() int {
	if m.analysis.Reference == nil {
		return 0
	}
	return m.analysis.Reference.Output.Geometry().Extents()[grid.AxisZ]
}

// ExitCode returns the code the run finished with.
func (m Model) ExitCode() int { return m.exitCode }

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("stencilcalc"))
	if m.config.Source != nil {
		b.WriteString(dimStyle.Render("  " + m.config.Source.Geometry().String()))
	}
	if m.sampled {
		b.WriteString(dimStyle.Render("  " + m.load.String()))
	}
	b.WriteString("\n\n")

	switch {
	case !m.done:
		fmt.Fprintf(&b, "Averaging... %d/%d strategies done\n", m.finished, len(m.config.Averagers))
	case m.analysis.Reference == nil:
		b.WriteString(statusErrorStyle.Render("No strategy completed the averaging pass."))
		if m.err != nil {
			fmt.Fprintf(&b, "\n%v", m.err)
		}
		b.WriteByte('\n')
	default:
		b.WriteString(m.browserView())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) browserView() string {
	ref := *m.analysis.Reference
	var b strings.Builder
	fmt.Fprintf(&b, "slice z=%d/%d\n", m.slice, m.sliceCount()-1)

	if len(m.analysis.Comparisons) == 0 {
		width := sliceWidth(ref.Output)
		b.WriteString(panel(ref.Name, renderSlice(ref.Output, m.slice, nil, m.config.Tolerance, width)))
		b.WriteString("\n" + dimStyle.Render("No other strategy to compare."))
		return b.String()
	}

	c := m.analysis.Comparisons[m.strategy]
	if c.Err != nil {
		b.WriteString(panel(ref.Name, renderSlice(ref.Output, m.slice, nil, m.config.Tolerance, sliceWidth(ref.Output))))
		fmt.Fprintf(&b, "\n%s: %s", c.Result.Name, statusErrorStyle.Render(c.Err.Error()))
		return b.String()
	}

	width := sliceWidth(ref.Output, c.Result.Output)
	left := panel(ref.Name, renderSlice(ref.Output, m.slice, nil, m.config.Tolerance, width))
	right := panel(c.Result.Name, renderSlice(c.Result.Output, m.slice, ref.Output, m.config.Tolerance, width))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteByte('\n')

	if c.Report.Equal() {
		fmt.Fprintf(&b, "%s %s agrees with %s (max |diff| %s, %s)",
			statusOKStyle.Render("OK"), c.Result.Name, ref.Name,
			format.FormatCell(c.Report.MaxAbsDiff), format.FormatExecutionDuration(c.Result.Duration))
	} else {
		fmt.Fprintf(&b, "%s %s: %d cells outside tolerance, %d in this slice (max |diff| %s)",
			statusErrorStyle.Render("MISMATCH"), c.Result.Name,
			len(c.Report.Mismatches), sliceMismatches(c.Report, m.slice), format.FormatCell(c.Report.MaxAbsDiff))
	}
	return b.String()
}

func panel(title, body string) string {
	return panelStyle.Render(titleStyle.Render(title) + "\n" + body)
}

// Run executes cfg inside the browser and returns the exit code of the run.
func Run(ctx context.Context, cfg Config) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if ctx.Err() != nil {
		return apperrors.ExitCodeFor(ctx.Err())
	}
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitErrorGeneric
}

// startRunCmd returns a tea.Cmd that executes and cross-checks the run.
func startRunCmd(ref *programRef, ctx context.Context, cfg Config) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteStrategies(ctx, cfg.Averagers, cfg.Source, reporter, io.Discard, cfg.Options...)
		opts := orchestration.PresentationOptions{Tolerance: cfg.Tolerance}
		exitCode := orchestration.AnalyzeResults(results, opts, presenter, presenter, io.Discard)

		return RunCompleteMsg{Analysis: orchestration.Analyze(results, cfg.Tolerance), ExitCode: exitCode}
	}
}

// tickCmd returns a command that sends a TickMsg after sampleInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd samples system load off the UI goroutine.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg{Stats: sysmon.Sample()}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
