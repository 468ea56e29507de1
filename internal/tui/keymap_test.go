package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"NextSlice", km.NextSlice},
		{"PrevSlice", km.PrevSlice},
		{"NextStrategy", km.NextStrategy},
		{"PrevStrategy", km.PrevStrategy},
		{"Help", km.Help},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have a help description", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	km := DefaultKeyMap()

	hasQ, hasCtrlC := false, false
	for _, k := range km.Quit.Keys() {
		switch k {
		case "q":
			hasQ = true
		case "ctrl+c":
			hasCtrlC = true
		}
	}
	if !hasQ {
		t.Error("expected Quit binding to include 'q'")
	}
	if !hasCtrlC {
		t.Error("expected Quit binding to include 'ctrl+c'")
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 6 {
		t.Errorf("FullHelp lists %d bindings, want 6", total)
	}
}
