// Package app wires configuration, strategies and presentation into the
// stencilcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/stencilcalc/internal/config"
	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/logging"
	"github.com/agbru/stencilcalc/internal/orchestration"
	"github.com/agbru/stencilcalc/internal/stencil"
	"github.com/agbru/stencilcalc/internal/tui"
	"github.com/agbru/stencilcalc/internal/ui"
)

// Application represents the stencilcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   stencil.Factory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom strategy factory for the application.
func WithFactory(f stencil.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "stencilcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	// The strategy names are fixed; worker and chunk settings come from the
	// parsed flags, so the default factory is built after parsing.
	availableAlgos := stencil.NewDefaultFactory(0, 0).List()
	if app.Factory != nil {
		availableAlgos = app.Factory.List()
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Factory == nil {
		app.Factory = stencil.NewDefaultFactory(cfg.Workers, cfg.ChunkSize)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "stencilcalc")
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if err := logging.SetLevel(a.Config.LogLevel); err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runStencil(ctx, out)
}

// runTUI launches the interactive slice browser.
func (a *Application) runTUI(ctx context.Context) int {
	geom, err := a.Config.Geometry()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return tui.Run(ctx, tui.Config{
		Averagers: orchestration.GetStrategiesToRun(a.Config.Algo, a.Factory),
		Source:    grid.Sequence(geom, a.Config.Start),
		Tolerance: a.Config.Tolerance(),
		// Log output would corrupt the alternate screen.
		Options: []orchestration.ExecuteOption{orchestration.WithLogger(logging.NopLogger{})},
	})
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
