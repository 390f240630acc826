// Package render draws chat formatter output as lipgloss strings: message
// bubbles, receipts and quoted replies.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tnguyen21/kestral-chat/internal/chat"
	"github.com/tnguyen21/kestral-chat/internal/theme"
)

// minInnerWidth keeps very narrow terminals from collapsing bubbles.
const minInnerWidth = 8

// Message is everything needed to draw one bubble.
type Message struct {
	ID       string
	Sender   string
	Text     string
	Status   chat.DeliveryStatus
	Position chat.BubblePosition
	Reply    *chat.RepliedMessage
}

// Options control how a transcript is laid out.
type Options struct {
	Width      int // columns available to the whole transcript
	Mode       chat.DisplayMode
	SelectedID string // bubble drawn with the selection border
}

// StatusGlyph renders a receipt label with its emphasis style.
func StatusGlyph(label chat.StatusLabel) string {
	switch {
	case !label.Known:
		return theme.ReceiptFallbackStyle.Render(label.Text)
	case label.Emphasis:
		return theme.ReceiptReadStyle.Render(label.Text)
	default:
		return theme.ReceiptStyle.Render(label.Text)
	}
}

// BubbleBorder builds a border whose corners follow p: large radius corners
// are rounded, medium are square and small are heavy.
func BubbleBorder(p chat.CornerProfile) lipgloss.Border {
	b := lipgloss.NormalBorder()
	b.TopLeft = cornerGlyph(p.TopLeft, "╭", "┌", "┏")
	b.TopRight = cornerGlyph(p.TopRight, "╮", "┐", "┓")
	b.BottomRight = cornerGlyph(p.BottomRight, "╯", "┘", "┛")
	b.BottomLeft = cornerGlyph(p.BottomLeft, "╰", "└", "┗")
	return b
}

func cornerGlyph(r chat.Radius, large, medium, small string) string {
	switch r {
	case chat.RadiusLarge:
		return large
	case chat.RadiusSmall:
		return small
	default:
		return medium
	}
}

// InnerWidth returns the widest text line a bubble may hold when the
// transcript is width columns wide.
func InnerWidth(width int) int {
	// Bubbles take three quarters of the row, less border and padding.
	w := width*3/4 - 4
	if w < minInnerWidth {
		return minInnerWidth
	}
	return w
}

// Bubble draws msg. It returns false when the message has no content and
// must be skipped.
func Bubble(msg Message, opts Options) (string, bool) {
	profile, ok := chat.ResolveCornerProfile(msg.Position, msg.Text)
	if !ok {
		return "", false
	}

	inner := InnerWidth(opts.Width)
	var lines []string

	if preview, ok := chat.FormatReplyPreview(msg.Reply); ok {
		for _, l := range WrapText("│ "+preview.Sender+": "+preview.Text, inner) {
			lines = append(lines, theme.QuoteStyle.Render(l))
		}
	}
	lines = append(lines, WrapText(msg.Text, inner)...)

	if msg.Position.IsMine {
		label := chat.ResolveStatusLabel(msg.Status, opts.Mode)
		lines = append(lines, placeRight(lines, StatusGlyph(label)))
	}

	style := theme.TheirBubbleStyle
	align := lipgloss.Left
	if msg.Position.IsMine {
		style = theme.MineBubbleStyle
		align = lipgloss.Right
	}
	style = style.Border(BubbleBorder(profile))
	if opts.SelectedID != "" && msg.ID == opts.SelectedID {
		style = style.BorderForeground(theme.ColorSelected)
	}

	box := style.Render(strings.Join(lines, "\n"))
	if !msg.Position.IsMine && msg.Position.IsFirst && msg.Sender != "" {
		box = lipgloss.JoinVertical(lipgloss.Left, theme.SenderStyle.Render(msg.Sender), box)
	}

	if opts.Width > 0 {
		box = lipgloss.PlaceHorizontal(opts.Width, align, box)
	}
	return box, true
}

// Transcript draws msgs top to bottom, skipping messages with no content.
func Transcript(msgs []Message, opts Options) string {
	var blocks []string
	for _, m := range msgs {
		if b, ok := Bubble(m, opts); ok {
			blocks = append(blocks, b)
		}
	}
	return strings.Join(blocks, "\n")
}

// placeRight pads s so it ends at the right edge of the widest line.
func placeRight(lines []string, s string) string {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return lipgloss.PlaceHorizontal(max(w, lipgloss.Width(s)), lipgloss.Right, s)
}

// Accessible returns the plain-text line announced for msg, or false when the
// message is not rendered.
func Accessible(msg Message, mode chat.DisplayMode) (string, bool) {
	if _, ok := chat.ResolveCornerProfile(msg.Position, msg.Text); !ok {
		return "", false
	}

	var b strings.Builder
	if preview, ok := chat.FormatReplyPreview(msg.Reply); ok {
		b.WriteString(preview.Accessible())
		b.WriteString(". ")
	}
	b.WriteString(msg.Sender)
	b.WriteString(": ")
	b.WriteString(strings.Join(strings.Fields(msg.Text), " "))
	if msg.Position.IsMine {
		b.WriteString(" (")
		b.WriteString(chat.ResolveStatusLabel(msg.Status, mode).Accessible)
		b.WriteString(")")
	}
	return b.String(), true
}
