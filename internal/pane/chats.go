package pane

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tnguyen21/kestral-chat/internal/data"
	"github.com/tnguyen21/kestral-chat/internal/theme"
)

// ChatsPane lists conversations with a preview of their newest message.
type ChatsPane struct {
	convs  []data.Conversation
	cursor int
	offset int // viewport scroll offset
	width  int
	height int
	err    error
	keys   chatsKeys
}

type chatsKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// NewChatsPane creates a new Chats pane.
func NewChatsPane() *ChatsPane {
	return &ChatsPane{
		keys: chatsKeys{
			Up:     key.NewBinding(key.WithKeys("k", "up")),
			Down:   key.NewBinding(key.WithKeys("j", "down")),
			Select: key.NewBinding(key.WithKeys("enter")),
		},
	}
}

func (p *ChatsPane) ID() PaneID        { return PaneChats }
func (p *ChatsPane) Title() string      { return "Chats" }
func (p *ChatsPane) ShortTitle() string { return "\U0001F4AC" } // 💬

// Badge returns the number of unread incoming messages across conversations.
func (p *ChatsPane) Badge() int {
	n := 0
	for _, c := range p.convs {
		n += c.Unread()
	}
	return n
}

func (p *ChatsPane) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.clampScroll()
}

func (p *ChatsPane) Init() tea.Cmd {
	return nil
}

func (p *ChatsPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case data.ConversationUpdateMsg:
		p.convs = msg.Conversations
		p.err = msg.Err
		p.clampScroll()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
				p.scrollToCursor()
			}
		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.convs)-1 {
				p.cursor++
				p.scrollToCursor()
			}
		case key.Matches(msg, p.keys.Select):
			return p, p.selectCmd()
		}
	}
	return p, nil
}

func (p *ChatsPane) selectCmd() tea.Cmd {
	if p.cursor >= len(p.convs) {
		return nil
	}
	id := p.convs[p.cursor].ID
	return func() tea.Msg { return ConversationSelectedMsg{ID: id} }
}

func (p *ChatsPane) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	var b strings.Builder
	header := fmt.Sprintf("─── CHATS (%d unread) ───", p.Badge())
	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis(header, p.width)))
	b.WriteString("\n")

	// Partial load errors still show the conversations that loaded.
	if p.err != nil {
		b.WriteString(theme.FailStyle.Render(TruncateWithEllipsis("  Error: "+firstLine(p.err.Error()), p.width)))
		b.WriteString("\n")
	}

	if len(p.convs) == 0 {
		if p.err == nil {
			b.WriteString(theme.MutedStyle.Render("  No conversations"))
		}
		return b.String()
	}

	ch := contentHeight(p.height)
	rows := p.renderRows()
	end := min(p.offset+ch, len(rows))
	visible := rows[p.offset:end]
	for _, row := range visible {
		b.WriteString(row)
		b.WriteString("\n")
	}
	for i := len(visible); i < ch; i++ {
		b.WriteString("\n")
	}

	b.WriteString(theme.MutedStyle.Render(TruncateWithEllipsis("j/k=move  enter=open", p.width)))
	return b.String()
}

func (p *ChatsPane) renderRows() []string {
	const titleCol, ageCol = 16, 10
	previewCol := max(p.width-4-titleCol-ageCol, 8)

	rows := make([]string, 0, len(p.convs))
	for i, c := range p.convs {
		unread := c.Unread() > 0
		icon := theme.IconRead
		if unread {
			icon = theme.IconUnread
		}

		var preview, age string
		if last, ok := c.Last(); ok {
			preview = last.Sender + ": " + strings.Join(strings.Fields(last.Text), " ")
			if !last.SentAt.IsZero() {
				age = FormatAge(time.Since(last.SentAt))
			}
		}

		cols := padOrTruncate(c.Title, titleCol) + padOrTruncate(preview, previewCol) + padOrTruncate(age, ageCol)
		line := fmt.Sprintf("  %s %s", icon, cols)
		if i == p.cursor {
			line = theme.AccentStyle.Bold(true).Render(fmt.Sprintf("  %s %s", iconChar(unread), cols))
		}
		rows = append(rows, line)
	}
	return rows
}

// scrollToCursor ensures the cursor row is visible in the viewport.
func (p *ChatsPane) scrollToCursor() {
	ch := contentHeight(p.height)
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+ch {
		p.offset = p.cursor - ch + 1
	}
	p.clampScroll()
}

// clampScroll ensures offset and cursor stay in valid range.
func (p *ChatsPane) clampScroll() {
	maxOffset := max(len(p.convs)-contentHeight(p.height), 0)
	p.offset = min(max(p.offset, 0), maxOffset)
	p.cursor = max(min(p.cursor, len(p.convs)-1), 0)
}

// iconChar returns a plain character for use in styled lines.
func iconChar(unread bool) string {
	if unread {
		return "●"
	}
	return "○"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Ensure ChatsPane implements Pane at compile time.
var _ Pane = (*ChatsPane)(nil)
