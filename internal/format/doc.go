// Package format holds the text formatting helpers shared by the CLI and TUI
// presenters.
package format
