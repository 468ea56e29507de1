// Package tui implements an interactive slice browser built on bubbletea.
// It runs the selected strategies, then shows one z-slice of the reference
// and of a compared result side by side, highlighting cells outside
// tolerance.
package tui
