package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/stencilcalc/internal/ui"
)

// Style variables for the slice browser, rebuilt from the ui theme by
// initTUIStyles.
var (
	panelStyle        lipgloss.Style
	titleStyle        lipgloss.Style
	dimStyle          lipgloss.Style
	interiorCellStyle lipgloss.Style
	haloCellStyle     lipgloss.Style
	mismatchCellStyle lipgloss.Style
	statusOKStyle     lipgloss.Style
	statusErrorStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again after the application has applied --no-color.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	interiorCellStyle = lipgloss.NewStyle().
		Foreground(t.Interior)

	haloCellStyle = lipgloss.NewStyle().
		Foreground(t.Halo)

	mismatchCellStyle = lipgloss.NewStyle().
		Foreground(t.Mismatch).
		Bold(true)

	statusOKStyle = lipgloss.NewStyle().
		Foreground(t.Interior).
		Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(t.Mismatch).
		Bold(true)
}
