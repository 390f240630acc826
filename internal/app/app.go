package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tnguyen21/kestral-chat/internal/chat"
	"github.com/tnguyen21/kestral-chat/internal/config"
	"github.com/tnguyen21/kestral-chat/internal/data"
	"github.com/tnguyen21/kestral-chat/internal/pane"
	"github.com/tnguyen21/kestral-chat/internal/theme"
)

// Model is the root bubbletea Model that orchestrates panes, tab bar,
// status bar, the menu and background transcript polling.
type Model struct {
	panes       []pane.Pane
	activePane  int
	width       int
	height      int
	layoutMode  LayoutMode
	keys        KeyMap
	store       *data.Store
	config      *config.Config
	logger      *log.Logger
	help        help.Model
	showHelp    bool
	menuOpen    bool
	menuCursor  int
	mode        chat.DisplayMode
	convCount   int
	loadErr     error
	lastRefresh time.Time
}

// New creates a root Model with the given config. A nil logger uses the
// package default.
func New(cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	mode := cfg.Mode()
	store := &data.Store{Dir: cfg.DataDir, Self: cfg.SelfName}

	onInspect := func(id string, label chat.StatusLabel) {
		logger.Debug("receipt inspected", "message", id, "status", label.Accessible, "known", label.Known)
	}

	panes := []pane.Pane{
		pane.NewChatsPane(),
		pane.NewThreadPane(mode, onInspect),
		pane.NewCallPane(),
	}

	return Model{
		panes:  panes,
		keys:   DefaultKeyMap(),
		store:  store,
		config: &cfg,
		logger: logger,
		help:   help.New(),
		mode:   mode,
	}
}

// ShortHelp implements help.KeyMap for the application key bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Tab, k.Menu, k.Help}
}

// FullHelp implements help.KeyMap for the application key bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Tab, k.ShiftTab, k.Menu},
		{k.Pane1, k.Pane2, k.Pane3},
		{k.Up, k.Down, k.Select, k.Back},
		{k.Mode, k.Refresh, k.Help},
	}
}

// Ensure KeyMap satisfies help.KeyMap at compile time.
var _ help.KeyMap = KeyMap{}

// Init starts the initial transcript load.
func (m Model) Init() tea.Cmd {
	return data.FetchConversationsCmd(m.store)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutMode = GetLayoutMode(msg.Width)
		m.help.Width = msg.Width
		contentH := ContentHeight(msg.Height)
		for _, p := range m.panes {
			p.SetSize(msg.Width, contentH)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case data.ConversationTickMsg:
		return m, data.FetchConversationsCmd(m.store)

	case data.ConversationUpdateMsg:
		m.lastRefresh = msg.FetchedAt
		m.convCount = len(msg.Conversations)
		m.loadErr = msg.Err
		if msg.Err != nil {
			m.logger.Warn("loading transcripts", "dir", m.store.Dir, "err", msg.Err)
		}
		cmds := m.forwardToAllPanes(msg)
		if !msg.Manual {
			cmds = append(cmds, data.ScheduleConversationPoll(
				time.Duration(m.config.PollInterval.Conversations)*time.Second))
		}
		return m, tea.Batch(cmds...)

	case pane.ConversationSelectedMsg:
		cmds := m.forwardToAllPanes(msg)
		m.activePane = m.paneIndex(pane.PaneThread)
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// View renders the full UI: tab bar, active pane content, and status bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	var content string
	switch {
	case m.showHelp:
		content = m.help.View(m.keys)
	case m.menuOpen:
		content = m.renderMenu()
	case m.activePane < len(m.panes):
		content = m.panes[m.activePane].View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

// handleKey processes global key bindings, forwarding unhandled keys
// to the active pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menuOpen {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Menu):
		m.menuOpen = true
		m.menuCursor = m.activePane
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.activePane = (m.activePane + 1) % len(m.panes)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.activePane = (m.activePane - 1 + len(m.panes)) % len(m.panes)
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		m.mode = m.mode.Toggle()
		return m, tea.Batch(m.forwardToAllPanes(pane.DisplayModeMsg{Mode: m.mode})...)

	case key.Matches(msg, m.keys.Refresh):
		return m, data.RefreshConversationsCmd(m.store)
	}

	if idx, ok := m.paneKeyIndex(msg); ok {
		m.activePane = idx
		return m, nil
	}

	return m.updateActivePane(msg)
}

// handleMenuKey drives the menu while it is open. Space toggles it closed.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Back):
		m.menuOpen = false
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(m.panes)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.activePane = m.menuCursor
		m.menuOpen = false
	}
	return m, nil
}

// paneKeyIndex returns the pane index if msg matches a pane number key.
func (m Model) paneKeyIndex(msg tea.KeyMsg) (int, bool) {
	paneKeys := []key.Binding{m.keys.Pane1, m.keys.Pane2, m.keys.Pane3}
	for i, k := range paneKeys {
		if key.Matches(msg, k) && i < len(m.panes) {
			return i, true
		}
	}
	return 0, false
}

// paneIndex returns the position of the pane with id, or the active pane.
func (m Model) paneIndex(id pane.PaneID) int {
	for i, p := range m.panes {
		if p.ID() == id {
			return i
		}
	}
	return m.activePane
}

// handleMouse processes mouse events, detecting tab bar clicks. Other events
// go to the active pane with Y relative to the pane's first row.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y < tabBarHeight {
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			if idx := m.tabAtX(msg.X); idx >= 0 {
				m.activePane = idx
			}
		}
		return m, nil
	}
	if m.showHelp || m.menuOpen {
		return m, nil
	}
	msg.Y -= tabBarHeight
	return m.updateActivePane(msg)
}

// updateActivePane sends a message to the active pane and stores the result.
func (m Model) updateActivePane(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.activePane >= len(m.panes) {
		return m, nil
	}
	newModel, cmd := m.panes[m.activePane].Update(msg)
	if newPane, ok := newModel.(pane.Pane); ok {
		m.panes[m.activePane] = newPane
	}
	return m, cmd
}

// forwardToAllPanes sends a message to every pane and collects commands.
func (m *Model) forwardToAllPanes(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for i, p := range m.panes {
		newModel, cmd := p.Update(msg)
		if newPane, ok := newModel.(pane.Pane); ok {
			m.panes[i] = newPane
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// ---------------------------------------------------------------------------
// Tab bar
// ---------------------------------------------------------------------------

func (m Model) renderTabBar() string {
	var parts []string
	for i, p := range m.panes {
		parts = append(parts, m.tabStyle(i).Render(m.tabLabel(p)))
	}

	if m.layoutMode == LayoutWide {
		sep := theme.MutedStyle.Render("|")
		return strings.Join(parts, " "+sep+" ")
	}
	return strings.Join(parts, "")
}

func (m Model) tabStyle(i int) lipgloss.Style {
	if i == m.activePane {
		return theme.TabActiveStyle.Underline(true)
	}
	return theme.TabInactiveStyle
}

// tabLabel returns the display label for a pane tab in the current layout mode.
func (m Model) tabLabel(p pane.Pane) string {
	label := p.Title()
	if m.layoutMode == LayoutNarrow {
		label = p.ShortTitle()
	}
	if badge := p.Badge(); badge > 0 {
		label += fmt.Sprintf("(%d)", badge)
	}
	return label
}

// tabAtX returns the pane index whose tab contains column x, or -1.
func (m Model) tabAtX(x int) int {
	pos := 0
	for i, p := range m.panes {
		if m.layoutMode == LayoutWide && i > 0 {
			pos += 2 + lipgloss.Width(theme.MutedStyle.Render("|")) // " | "
		}
		w := lipgloss.Width(m.tabStyle(i).Render(m.tabLabel(p)))
		if x >= pos && x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}

// ---------------------------------------------------------------------------
// Menu and status bar
// ---------------------------------------------------------------------------

func (m Model) renderMenu() string {
	lines := []string{theme.MenuTitleStyle.Render("☰ Menu")}
	for i, p := range m.panes {
		if i == m.menuCursor {
			lines = append(lines, theme.MenuActiveRowStyle.Render("› "+p.Title()))
			continue
		}
		lines = append(lines, theme.MenuRowStyle.Render("  "+p.Title()))
	}
	lines = append(lines, "", theme.MenuRowStyle.Render("receipts: "+m.mode.String()+"  (m to switch)"))

	menu := strings.Join(lines, "\n")
	return lipgloss.Place(m.width, ContentHeight(m.height), lipgloss.Center, lipgloss.Center, menu)
}

func (m Model) renderStatusBar() string {
	health := theme.PassStyle.Render(fmt.Sprintf("● %d chats", m.convCount))
	if m.loadErr != nil {
		health = theme.WarnStyle.Render(fmt.Sprintf("⚠ %d chats", m.convCount))
	}

	age := "…"
	if !m.lastRefresh.IsZero() {
		age = pane.FormatAge(time.Since(m.lastRefresh))
	}
	parts := []string{health, theme.MutedStyle.Render("↻ " + age)}

	if m.layoutMode != LayoutNarrow {
		menu := "☰ menu"
		if m.menuOpen {
			menu = "☰ close"
		}
		parts = append(parts,
			theme.MutedStyle.Render("receipts: "+m.mode.String()),
			theme.MutedStyle.Render(menu+"  ?=help  q=quit"))
	}

	return theme.StatusBarStyle.Width(m.width).Render(strings.Join(parts, "  |  "))
}
