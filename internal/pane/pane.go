package pane

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/tnguyen21/kestral-chat/internal/chat"
)

// PaneID identifies each TUI pane.
type PaneID int

const (
	PaneChats PaneID = iota
	PaneThread
	PaneCall
)

// Pane is the interface that all TUI panes implement.
type Pane interface {
	tea.Model
	ID() PaneID
	Title() string      // full title for wide mode (e.g., "Chats")
	ShortTitle() string // emoji/icon for narrow mode (e.g., "💬")
	Badge() int         // notification count (0 = hidden)
	SetSize(w, h int)   // called on resize
}

// ConversationSelectedMsg is sent when the user opens a conversation.
type ConversationSelectedMsg struct {
	ID string
}

// DisplayModeMsg switches how delivery receipts are drawn.
type DisplayModeMsg struct {
	Mode chat.DisplayMode
}

// TruncateWithEllipsis truncates s to maxLen terminal cells, appending "…"
// if truncated. If maxLen < 1, returns an empty string.
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// FormatAge formats a duration as a human-readable age string.
func FormatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// padOrTruncate fits s into exactly width cells, keeping one cell of gap.
func padOrTruncate(s string, width int) string {
	return runewidth.FillRight(TruncateWithEllipsis(s, width-1), width)
}

// contentHeight is the pane height left after a header and footer row.
func contentHeight(h int) int {
	if h-2 < 1 {
		return 1
	}
	return h - 2
}
