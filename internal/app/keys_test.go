package app

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
		{"Tab", km.Tab, []string{"tab"}},
		{"ShiftTab", km.ShiftTab, []string{"shift+tab"}},
		{"Pane1", km.Pane1, []string{"1"}},
		{"Pane2", km.Pane2, []string{"2"}},
		{"Pane3", km.Pane3, []string{"3"}},
		{"Menu", km.Menu, []string{" "}},
		{"Up", km.Up, []string{"k", "up"}},
		{"Down", km.Down, []string{"j", "down"}},
		{"Select", km.Select, []string{"enter"}},
		{"Back", km.Back, []string{"esc"}},
		{"Mode", km.Mode, []string{"m"}},
		{"Refresh", km.Refresh, []string{"r"}},
		{"Help", km.Help, []string{"?"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotKeys := tt.binding.Keys()
			if len(gotKeys) != len(tt.keys) {
				t.Fatalf("%s: got %d keys, want %d", tt.name, len(gotKeys), len(tt.keys))
			}
			for i, k := range tt.keys {
				if gotKeys[i] != k {
					t.Errorf("%s: key[%d] = %q, want %q", tt.name, i, gotKeys[i], k)
				}
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	for i, row := range km.FullHelp() {
		if len(row) == 0 {
			t.Errorf("FullHelp row %d is empty", i)
		}
	}
}
