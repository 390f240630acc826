package pane

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hell…"},
		{"maxLen 1", "hello", 1, "…"},
		{"maxLen 0", "hello", 0, ""},
		{"negative maxLen", "hello", -1, ""},
		{"empty string", "", 5, ""},
		{"unicode fits", "日本語", 6, "日本語"},
		{"wide runes", "日本語テスト", 5, "日本…"},
		{"wide rune at edge", "日本語テスト", 4, "日…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateWithEllipsis(tt.s, tt.maxLen)
			if got != tt.want {
				t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"just now", 30 * time.Second, "just now"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"one minute", 1 * time.Minute, "1m ago"},
		{"hours", 2 * time.Hour, "2h ago"},
		{"days", 3 * 24 * time.Hour, "3d ago"},
		{"zero", 0, "just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAge(tt.d)
			if got != tt.want {
				t.Errorf("FormatAge(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestPadOrTruncate(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ana", 6, "ana   "},
		{"conversation", 6, "conv… "},
		{"", 3, "   "},
		{"日本語テスト", 8, "日本語… "},
	}
	for _, tt := range tests {
		if got := padOrTruncate(tt.s, tt.width); got != tt.want {
			t.Errorf("padOrTruncate(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
		if w := runewidth.StringWidth(padOrTruncate(tt.s, tt.width)); w != tt.width {
			t.Errorf("padOrTruncate(%q, %d) is %d cells wide", tt.s, tt.width, w)
		}
	}
}

func TestContentHeight(t *testing.T) {
	tests := []struct{ h, want int }{{24, 22}, {3, 1}, {2, 1}, {0, 1}}
	for _, tt := range tests {
		if got := contentHeight(tt.h); got != tt.want {
			t.Errorf("contentHeight(%d) = %d, want %d", tt.h, got, tt.want)
		}
	}
}

func TestPaneIDValues(t *testing.T) {
	// Ensure the iota enum values are sequential starting from 0.
	if PaneChats != 0 {
		t.Errorf("PaneChats = %d, want 0", PaneChats)
	}
	if PaneThread != 1 {
		t.Errorf("PaneThread = %d, want 1", PaneThread)
	}
	if PaneCall != 2 {
		t.Errorf("PaneCall = %d, want 2", PaneCall)
	}
}
