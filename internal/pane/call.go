package pane

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tnguyen21/kestral-chat/internal/data"
	"github.com/tnguyen21/kestral-chat/internal/theme"
)

// CallPane is the group-call placeholder for the selected conversation.
// It lists who would be invited; there is no call signalling behind it.
type CallPane struct {
	convs      map[string]data.Conversation
	selectedID string
	width      int
	height     int
}

// NewCallPane creates a new Call pane.
func NewCallPane() *CallPane {
	return &CallPane{convs: make(map[string]data.Conversation)}
}

func (p *CallPane) ID() PaneID        { return PaneCall }
func (p *CallPane) Title() string      { return "Call" }
func (p *CallPane) ShortTitle() string { return theme.IconCall }
func (p *CallPane) Badge() int         { return 0 }

func (p *CallPane) SetSize(w, h int) {
	p.width = w
	p.height = h
}

func (p *CallPane) Init() tea.Cmd {
	return nil
}

func (p *CallPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case data.ConversationUpdateMsg:
		p.convs = make(map[string]data.Conversation, len(msg.Conversations))
		for _, c := range msg.Conversations {
			p.convs[c.ID] = c
		}
	case ConversationSelectedMsg:
		p.selectedID = msg.ID
	}
	return p, nil
}

func (p *CallPane) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis("─── GROUP CALL ───", p.width)))
	b.WriteString("\n")

	c, ok := p.convs[p.selectedID]
	if !ok {
		b.WriteString(theme.MutedStyle.Render("  No conversation selected"))
		return b.String()
	}

	b.WriteString(TruncateWithEllipsis(fmt.Sprintf("  %s %s", theme.IconCall, c.Title), p.width))
	b.WriteString("\n\n")

	for _, name := range callParticipants(c) {
		line := fmt.Sprintf("  %s %s", theme.IconParticipant, name)
		if name == c.Self {
			line += theme.MutedStyle.Render(" (you)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.MutedStyle.Render("  Waiting for others to join…"))
	return b.String()
}

// callParticipants lists the conversation's participants, or its distinct
// senders when the transcript names none. Self always comes first.
func callParticipants(c data.Conversation) []string {
	names := c.Participants
	if len(names) == 0 {
		names = c.Senders()
	}

	seen := make(map[string]bool, len(names)+1)
	var out []string
	if c.Self != "" {
		out = append(out, c.Self)
		seen[c.Self] = true
	}
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// Ensure CallPane implements Pane at compile time.
var _ Pane = (*CallPane)(nil)
