// Package ui provides the color themes shared by the CLI presenter and the
// slice browser. ANSI themes serve plain terminal output; TUI themes carry
// lipgloss colors. NO_COLOR and --no-color select the colorless variants.
package ui
