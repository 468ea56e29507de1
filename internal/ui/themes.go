package ui

import (
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps color roles to ANSI escape codes.
type Theme struct {
	Name string
	// Primary highlights strategy names.
	Primary string
	// Secondary dims border cells and labels.
	Secondary string
	// Success marks agreeing results.
	Success string
	// Warning marks durations and partial outcomes.
	Warning string
	// Error marks failures and mismatching cells.
	Error     string
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme uses darker colors for light backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all escape codes.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme holds the lipgloss palette of the slice browser.
type TUITheme struct {
	Text   lipgloss.TerminalColor
	Border lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
	// Interior colors cells written by the stencil.
	Interior lipgloss.TerminalColor
	// Halo colors border cells, which no strategy writes.
	Halo lipgloss.TerminalColor
	// Mismatch colors cells outside tolerance.
	Mismatch lipgloss.TerminalColor
	Dim      lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default slice browser palette.
	DarkTUITheme = TUITheme{
		Text:     lipgloss.Color("#E0E0E0"),
		Border:   lipgloss.Color("#4488FF"),
		Accent:   lipgloss.Color("#FF8C00"),
		Interior: lipgloss.Color("#9ECE6A"),
		Halo:     lipgloss.Color("#666666"),
		Mismatch: lipgloss.Color("#FF4444"),
		Dim:      lipgloss.Color("#808080"),
	}

	// NoColorTUITheme renders everything in the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:     lipgloss.NoColor{},
		Border:   lipgloss.NoColor{},
		Accent:   lipgloss.NoColor{},
		Interior: lipgloss.NoColor{},
		Halo:     lipgloss.NoColor{},
		Mismatch: lipgloss.NoColor{},
		Dim:      lipgloss.NoColor{},
	}
)

// ThemeNames returns the registered theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates the theme registered under name and reports whether
// it exists. Unknown names leave the dark theme active.
func SetTheme(name string) bool {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	currentTheme = t
	return ok
}

// GetCurrentTUITheme returns the TUI palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// InitTheme selects the colorless theme when noColor is set or the NO_COLOR
// environment variable is present (https://no-color.org/), and the dark
// theme otherwise.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
