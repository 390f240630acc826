package pane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tnguyen21/kestral-chat/internal/chat"
	"github.com/tnguyen21/kestral-chat/internal/data"
	"github.com/tnguyen21/kestral-chat/internal/render"
	"github.com/tnguyen21/kestral-chat/internal/theme"
)

// threadHeaderRows is how many pane rows sit above the first transcript line.
const threadHeaderRows = 1

// inspection is what the footer shows after a receipt is inspected.
type inspection struct {
	messageID string
	status    string
	reply     string
}

// block is one rendered bubble and the transcript lines it occupies.
type block struct {
	msg   render.Message
	start int
	end   int // exclusive
}

// ThreadPane shows the bubbles of the selected conversation.
type ThreadPane struct {
	convs      map[string]data.Conversation
	selectedID string
	items      []render.Message // renderable messages, in order
	mode       chat.DisplayMode
	cursor     int
	offset     int // first visible transcript line
	width      int
	height     int
	inspected  *inspection
	onInspect  chat.InspectFunc
	keys       threadKeys
}

type threadKeys struct {
	Up      key.Binding
	Down    key.Binding
	Inspect key.Binding
	Back    key.Binding
}

// NewThreadPane creates a Thread pane. onInspect may be nil.
func NewThreadPane(mode chat.DisplayMode, onInspect chat.InspectFunc) *ThreadPane {
	return &ThreadPane{
		convs:     make(map[string]data.Conversation),
		mode:      mode,
		onInspect: onInspect,
		keys: threadKeys{
			Up:      key.NewBinding(key.WithKeys("k", "up")),
			Down:    key.NewBinding(key.WithKeys("j", "down")),
			Inspect: key.NewBinding(key.WithKeys("i")),
			Back:    key.NewBinding(key.WithKeys("esc")),
		},
	}
}

func (p *ThreadPane) ID() PaneID        { return PaneThread }
func (p *ThreadPane) ShortTitle() string { return "\U0001F5E8" } // 🗨
func (p *ThreadPane) Badge() int         { return 0 }

// Title names the open conversation when there is one.
func (p *ThreadPane) Title() string {
	if c, ok := p.convs[p.selectedID]; ok {
		return c.Title
	}
	return "Thread"
}

func (p *ThreadPane) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.scrollToCursor()
}

func (p *ThreadPane) Init() tea.Cmd {
	return nil
}

func (p *ThreadPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case data.ConversationUpdateMsg:
		p.convs = make(map[string]data.Conversation, len(msg.Conversations))
		for _, c := range msg.Conversations {
			p.convs[c.ID] = c
		}
		p.rebuild()

	case ConversationSelectedMsg:
		if msg.ID != p.selectedID {
			p.selectedID = msg.ID
			p.cursor = 0
			p.offset = 0
			p.inspected = nil
		}
		p.rebuild()
		// Start at the newest message.
		p.cursor = max(len(p.items)-1, 0)
		p.scrollToCursor()

	case DisplayModeMsg:
		p.mode = msg.Mode
		if p.inspected != nil {
			p.inspectCursor()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
				p.scrollToCursor()
			}
		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.items)-1 {
				p.cursor++
				p.scrollToCursor()
			}
		case key.Matches(msg, p.keys.Inspect):
			p.inspectCursor()
		case key.Matches(msg, p.keys.Back):
			p.inspected = nil
		}

	case tea.MouseMsg:
		// Y is relative to the pane's first row.
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			p.clickAt(msg.Y - threadHeaderRows + p.offset)
		}
	}
	return p, nil
}

// rebuild recomputes the renderable messages of the selected conversation.
func (p *ThreadPane) rebuild() {
	p.items = p.items[:0]
	c, ok := p.convs[p.selectedID]
	if !ok {
		p.cursor = 0
		return
	}
	for _, m := range render.FromConversation(c) {
		if strings.TrimSpace(m.Text) != "" {
			p.items = append(p.items, m)
		}
	}
	p.cursor = max(min(p.cursor, len(p.items)-1), 0)
}

// inspectCursor shows the cursor message's receipt and reply summary in the
// footer.
func (p *ThreadPane) inspectCursor() {
	if p.cursor >= len(p.items) {
		return
	}
	m := p.items[p.cursor]

	in := &inspection{messageID: m.ID, status: "From " + m.Sender}
	if preview, ok := chat.FormatReplyPreview(m.Reply); ok {
		in.reply = preview.Accessible()
	}
	p.inspected = in

	// Only own messages carry a receipt to inspect.
	if m.Position.IsMine {
		label := chat.ResolveStatusLabel(m.Status, p.mode)
		in.status = "Status: " + label.Accessible
		chat.NotifyInspect(p.onInspect, m.ID, label)
	}
}

func (p *ThreadPane) clickAt(line int) {
	for i, b := range p.layout() {
		if line >= b.start && line < b.end {
			p.cursor = i
			p.inspectCursor()
			return
		}
	}
}

// layout renders every item and records the lines each one spans.
func (p *ThreadPane) layout() []block {
	opts := render.Options{Width: p.width, Mode: p.mode}
	if p.cursor < len(p.items) {
		opts.SelectedID = p.items[p.cursor].ID
	}

	blocks := make([]block, 0, len(p.items))
	line := 0
	for _, m := range p.items {
		out, ok := render.Bubble(m, opts)
		if !ok {
			continue
		}
		h := lipgloss.Height(out)
		blocks = append(blocks, block{msg: m, start: line, end: line + h})
		line += h
	}
	return blocks
}

func (p *ThreadPane) scrollToCursor() {
	if p.height == 0 {
		return
	}
	blocks := p.layout()
	if p.cursor >= len(blocks) {
		p.offset = 0
		return
	}
	ch := contentHeight(p.height)
	// The top of a bubble taller than the viewport wins over its bottom.
	b := blocks[p.cursor]
	if b.end > p.offset+ch {
		p.offset = max(b.end-ch, 0)
	}
	if b.start < p.offset {
		p.offset = b.start
	}
}

func (p *ThreadPane) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}

	var b strings.Builder
	c, ok := p.convs[p.selectedID]
	if !ok {
		b.WriteString(theme.PaneHeaderStyle.Render("─── THREAD ───"))
		b.WriteString("\n")
		b.WriteString(theme.MutedStyle.Render("  Select a conversation in Chats"))
		return b.String()
	}

	header := fmt.Sprintf("─── %s (%s) ───", strings.ToUpper(c.Title), p.mode)
	b.WriteString(theme.PaneHeaderStyle.Render(TruncateWithEllipsis(header, p.width)))
	b.WriteString("\n")

	opts := render.Options{Width: p.width, Mode: p.mode}
	if p.cursor < len(p.items) {
		opts.SelectedID = p.items[p.cursor].ID
	}
	var lines []string
	if transcript := render.Transcript(p.items, opts); transcript != "" {
		lines = strings.Split(transcript, "\n")
	}

	ch := contentHeight(p.height)
	start := min(p.offset, len(lines))
	end := min(start+ch, len(lines))
	for _, l := range lines[start:end] {
		b.WriteString(l)
		b.WriteString("\n")
	}
	for i := end - start; i < ch; i++ {
		b.WriteString("\n")
	}

	b.WriteString(p.footer())
	return b.String()
}

func (p *ThreadPane) footer() string {
	if p.inspected == nil {
		return theme.MutedStyle.Render(TruncateWithEllipsis("j/k=move  i=inspect  m=mode  esc=clear", p.width))
	}
	text := p.inspected.status
	if p.inspected.reply != "" {
		text += "  " + p.inspected.reply
	}
	return theme.AccentStyle.Render(TruncateWithEllipsis(text, p.width))
}

// Ensure ThreadPane implements Pane at compile time.
var _ Pane = (*ThreadPane)(nil)
