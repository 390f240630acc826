package pane

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tnguyen21/kestral-chat/internal/chat"
	"github.com/tnguyen21/kestral-chat/internal/data"
)

func openThread(t *testing.T, mode chat.DisplayMode, onInspect chat.InspectFunc, id string) *ThreadPane {
	t.Helper()
	p := NewThreadPane(mode, onInspect)
	p.SetSize(80, 40)
	p.Update(data.ConversationUpdateMsg{Conversations: testConversations()})
	p.Update(ConversationSelectedMsg{ID: id})
	return p
}

func TestNewThreadPane(t *testing.T) {
	p := NewThreadPane(chat.DisplaySymbolic, nil)
	if p.ID() != PaneThread {
		t.Errorf("ID() = %d, want %d", p.ID(), PaneThread)
	}
	if p.Title() != "Thread" {
		t.Errorf("Title() = %q, want Thread", p.Title())
	}
	if p.Badge() != 0 {
		t.Errorf("Badge() = %d, want 0", p.Badge())
	}
}

func TestThreadPaneNoSelection(t *testing.T) {
	p := NewThreadPane(chat.DisplaySymbolic, nil)
	p.SetSize(80, 24)
	if view := p.View(); !strings.Contains(view, "Select a conversation") {
		t.Error("unselected thread should prompt for a conversation")
	}
}

func TestThreadPaneViewZeroSize(t *testing.T) {
	p := NewThreadPane(chat.DisplaySymbolic, nil)
	if view := p.View(); view != "" {
		t.Errorf("View with zero size should be empty, got %q", view)
	}
}

func TestThreadPaneViewSymbolic(t *testing.T) {
	p := openThread(t, chat.DisplaySymbolic, nil, "team")

	if p.Title() != "Team" {
		t.Errorf("Title() = %q, want Team", p.Title())
	}
	view := p.View()
	for _, want := range []string{"TEAM (symbolic)", "standup in 5", "on my way", "running late", "✓✓", "ana: standup in 5"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestThreadPaneViewTextualAndToggle(t *testing.T) {
	p := openThread(t, chat.DisplayTextual, nil, "team")
	if view := p.View(); !strings.Contains(view, "Delivered") {
		t.Error("textual mode should show the Delivered word")
	}

	p.Update(DisplayModeMsg{Mode: chat.DisplaySymbolic})
	view := p.View()
	if strings.Contains(view, "Delivered") {
		t.Error("symbolic mode should not show the Delivered word")
	}
	if !strings.Contains(view, "✓✓") {
		t.Error("symbolic mode should show ✓✓")
	}
}

func TestThreadPaneUnknownStatusAndEmptyMessage(t *testing.T) {
	p := openThread(t, chat.DisplaySymbolic, nil, "dm")

	if len(p.items) != 1 {
		t.Fatalf("items = %d, want 1 (empty message skipped)", len(p.items))
	}
	if view := p.View(); !strings.Contains(view, chat.UnknownStatusText) {
		t.Error("pending status should render the fallback label")
	}
}

func TestThreadPaneInspect(t *testing.T) {
	var calls []string
	var lastLabel chat.StatusLabel
	onInspect := func(id string, label chat.StatusLabel) {
		calls = append(calls, id)
		lastLabel = label
	}
	p := openThread(t, chat.DisplayTextual, onInspect, "team")

	// Cursor starts on the newest message (bo, incoming).
	if p.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", p.cursor)
	}
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if len(calls) != 0 {
		t.Error("incoming messages have no receipt to inspect")
	}
	if !strings.Contains(p.View(), "From bo") {
		t.Error("footer should name the sender of an incoming message")
	}

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if len(calls) != 1 || calls[0] != "m2" {
		t.Fatalf("inspect calls = %v, want [m2]", calls)
	}
	if lastLabel.Accessible != "Delivered" {
		t.Errorf("label accessible = %q, want Delivered", lastLabel.Accessible)
	}

	view := p.View()
	if !strings.Contains(view, "Status: Delivered") {
		t.Error("footer should show the accessible status")
	}
	if !strings.Contains(view, "Replying to ana: standup in 5") {
		t.Error("footer should show the reply summary")
	}

	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(p.View(), "Status: Delivered") {
		t.Error("esc should clear the inspection")
	}
}

func TestThreadPaneInspectNilCallback(t *testing.T) {
	p := openThread(t, chat.DisplaySymbolic, nil, "dm")
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	if !strings.Contains(p.View(), "Status: "+chat.UnknownStatusText) {
		t.Error("fallback label should be announced")
	}
}

func TestThreadPaneClickInspects(t *testing.T) {
	var calls []string
	p := openThread(t, chat.DisplaySymbolic, func(id string, _ chat.StatusLabel) {
		calls = append(calls, id)
	}, "team")

	blocks := p.layout()
	if len(blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(blocks))
	}
	y := blocks[1].start + threadHeaderRows - p.offset
	p.Update(tea.MouseMsg{X: 70, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	if p.cursor != 1 {
		t.Errorf("cursor = %d, want 1", p.cursor)
	}
	if len(calls) != 1 || calls[0] != "m2" {
		t.Errorf("inspect calls = %v, want [m2]", calls)
	}
}

func TestThreadPaneScrollsToCursor(t *testing.T) {
	p := NewThreadPane(chat.DisplaySymbolic, nil)
	p.SetSize(80, 6) // 4 content rows, less than one bubble stack
	p.Update(data.ConversationUpdateMsg{Conversations: testConversations()})
	p.Update(ConversationSelectedMsg{ID: "team"})

	blocks := p.layout()
	last := blocks[len(blocks)-1]
	if last.end > p.offset+contentHeight(p.height) {
		t.Errorf("newest bubble not visible: end=%d offset=%d", last.end, p.offset)
	}

	for i := 0; i < 5; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	if p.cursor != 0 || p.offset != 0 {
		t.Errorf("cursor=%d offset=%d, want 0 and 0", p.cursor, p.offset)
	}
}

func TestThreadPaneReloadKeepsSelection(t *testing.T) {
	p := openThread(t, chat.DisplaySymbolic, nil, "team")
	p.Update(tea.KeyMsg{Type: tea.KeyUp})

	p.Update(data.ConversationUpdateMsg{Conversations: testConversations()})
	if p.selectedID != "team" || p.cursor != 1 {
		t.Errorf("selected=%q cursor=%d, want team and 1", p.selectedID, p.cursor)
	}

	p.Update(data.ConversationUpdateMsg{})
	if len(p.items) != 0 || p.cursor != 0 {
		t.Errorf("conversation removed: items=%d cursor=%d", len(p.items), p.cursor)
	}
}
