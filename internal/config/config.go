// Package config parses and validates the stencilcalc command line,
// applying STENCIL_-prefixed environment overrides for flags that were not
// set explicitly.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/stencilcalc/internal/compare"
	apperrors "github.com/agbru/stencilcalc/internal/errors"
	"github.com/agbru/stencilcalc/internal/grid"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "STENCIL_"

// Defaults reproduce the reference 6x5x4 configuration.
var (
	DefaultExtents = [grid.Axes]int{6, 5, 4}
	DefaultBorders = [grid.Axes]grid.Border{{Low: 1, High: 2}, {Low: 2, High: 1}, {Low: 1, High: 2}}
)

const (
	DefaultAlgo     = "all"
	DefaultStart    = 100.0
	DefaultTimeout  = 1 * time.Minute
	DefaultLogLevel = "warn"
)

// AppConfig aggregates the application's configuration parameters.
// It is built once by ParseConfig and treated as read-only afterwards.
type AppConfig struct {
	// Extents is the grid size per axis, x first.
	Extents [grid.Axes]int
	// Borders is the (low, high) border pair per axis, x first.
	Borders [grid.Axes]grid.Border
	// Algo selects the strategy to run, or "all".
	Algo string
	// Workers bounds the parallel strategy's goroutines (0 = GOMAXPROCS).
	Workers int
	// ChunkSize is the parallel strategy's work items per task (0 = auto).
	ChunkSize int
	// Start is the first value of the generated source sequence.
	Start float64
	// Atol and Rtol define the equivalence tolerance.
	Atol, Rtol float64
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet prints only the final status line.
	Quiet bool
	// Verbose prints the reference and each result grid side by side.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI opens the interactive slice browser after the run.
	TUI bool
	// Metrics dumps the Prometheus text exposition after the run.
	Metrics bool
	// LogLevel is the zerolog level name.
	LogLevel string
}

// Geometry builds the grid geometry described by the configuration.
func (c AppConfig) Geometry() (grid.Geometry, error) {
	return grid.NewGeometry(c.Extents, c.Borders)
}

// Tolerance returns the configured equivalence tolerance.
func (c AppConfig) Tolerance() compare.Tolerance {
	return compare.Tolerance{Atol: c.Atol, Rtol: c.Rtol}
}

// Validate checks semantic constraints that flag parsing cannot express.
func (c AppConfig) Validate(availableAlgos []string) error {
	if _, err := c.Geometry(); err != nil {
		return err
	}
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]",
			c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("--workers must be non-negative, got %d", c.Workers)
	}
	if c.ChunkSize < 0 {
		return apperrors.NewConfigError("--chunk-size must be non-negative, got %d", c.ChunkSize)
	}
	if c.Atol < 0 || c.Rtol < 0 {
		return apperrors.NewConfigError("tolerances must be non-negative (atol=%g, rtol=%g)", c.Atol, c.Rtol)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	return nil
}

// ParseConfig parses args into an AppConfig, applies environment overrides,
// and validates the result. It returns flag.ErrHelp when -h/--help is used.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := AppConfig{
		Extents: DefaultExtents,
		Borders: DefaultBorders,
	}
	algoHelp := fmt.Sprintf("Strategy to run: 'all' or one of [%s].", strings.Join(availableAlgos, ", "))

	fs.Var((*extentsValue)(&cfg.Extents), "extents", "Grid extents as x,y,z.")
	fs.Var((*bordersValue)(&cfg.Borders), "borders", "Per-axis low:high borders as xl:xh,yl:yh,zl:zh.")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, algoHelp)
	fs.IntVar(&cfg.Workers, "workers", 0, "Parallel strategy goroutine limit (0 = GOMAXPROCS).")
	fs.IntVar(&cfg.ChunkSize, "chunk-size", 0, "Parallel strategy cells per task (0 = automatic).")
	fs.Float64Var(&cfg.Start, "start", DefaultStart, "First value of the generated source sequence.")
	fs.Float64Var(&cfg.Atol, "atol", compare.DefaultTolerance.Atol, "Absolute tolerance of the equivalence check.")
	fs.Float64Var(&cfg.Rtol, "rtol", compare.DefaultTolerance.Rtol, "Relative tolerance of the equivalence check.")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum execution time (e.g., 30s, 1m).")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Quiet mode: print only the final status.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print the reference and result grids side by side.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose mode (shorthand).")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.TUI, "tui", false, "Browse the result slices interactively after the run.")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error).")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errorWriter, "Computes a box average over a 3-axis grid with each strategy and\n")
		fmt.Fprintf(errorWriter, "checks the results against the sequential reference.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// ParseExtents parses "x,y,z" into per-axis extents.
func ParseExtents(s string) ([grid.Axes]int, error) {
	var out [grid.Axes]int
	parts := strings.Split(s, ",")
	if len(parts) != grid.Axes {
		return out, apperrors.NewConfigError("extents %q: want %d comma-separated values", s, grid.Axes)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, apperrors.NewConfigError("extents %q: %v", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseBorders parses "xl:xh,yl:yh,zl:zh" into per-axis border pairs.
func ParseBorders(s string) ([grid.Axes]grid.Border, error) {
	var out [grid.Axes]grid.Border
	parts := strings.Split(s, ",")
	if len(parts) != grid.Axes {
		return out, apperrors.NewConfigError("borders %q: want %d comma-separated low:high pairs", s, grid.Axes)
	}
	for i, p := range parts {
		lo, hi, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			return out, apperrors.NewConfigError("borders %q: pair %q is not low:high", s, p)
		}
		l, err := strconv.Atoi(lo)
		if err != nil {
			return out, apperrors.NewConfigError("borders %q: %v", s, err)
		}
		h, err := strconv.Atoi(hi)
		if err != nil {
			return out, apperrors.NewConfigError("borders %q: %v", s, err)
		}
		out[i] = grid.Border{Low: l, High: h}
	}
	return out, nil
}

// FormatExtents is the inverse of ParseExtents.
func FormatExtents(e [grid.Axes]int) string {
	return fmt.Sprintf("%d,%d,%d", e[0], e[1], e[2])
}

// FormatBorders is the inverse of ParseBorders.
func FormatBorders(b [grid.Axes]grid.Border) string {
	return fmt.Sprintf("%d:%d,%d:%d,%d:%d", b[0].Low, b[0].High, b[1].Low, b[1].High, b[2].Low, b[2].High)
}

type extentsValue [grid.Axes]int

func (v *extentsValue) String() string { return FormatExtents(*v) }

func (v *extentsValue) Set(s string) error {
	e, err := ParseExtents(s)
	if err != nil {
		return err
	}
	*v = e
	return nil
}

type bordersValue [grid.Axes]grid.Border

func (v *bordersValue) String() string { return FormatBorders(*v) }

func (v *bordersValue) Set(s string) error {
	b, err := ParseBorders(s)
	if err != nil {
		return err
	}
	*v = b
	return nil
}
