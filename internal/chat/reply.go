package chat

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// ReplyPreviewLimit is the longest quoted text shown before truncation,
// counted in grapheme clusters.
const ReplyPreviewLimit = 50

// ContinuationMarker is appended to quoted text that was cut short.
const ContinuationMarker = "…"

// unknownSender stands in for a quoted message with no sender name.
const unknownSender = "Unknown sender"

// RepliedMessage is the message a reply quotes.
type RepliedMessage struct {
	SenderName string
	Text       string
}

// ReplyPreview is the quoted line drawn above a reply.
type ReplyPreview struct {
	Sender    string
	Text      string // possibly truncated, marker included
	Truncated bool
}

// Accessible returns the summary announced for the quote.
func (p ReplyPreview) Accessible() string {
	return fmt.Sprintf("Replying to %s: %s", p.Sender, p.Text)
}

// FormatReplyPreview builds the preview for replied. The second return is
// false when replied is nil or its text is blank, the same gate a bubble
// uses, so a quote never points at a message that is not drawn.
func FormatReplyPreview(replied *RepliedMessage) (ReplyPreview, bool) {
	if replied == nil || strings.TrimSpace(replied.Text) == "" {
		return ReplyPreview{}, false
	}

	sender := strings.TrimSpace(replied.SenderName)
	if sender == "" {
		sender = unknownSender
	}

	text, cut := truncateGraphemes(replied.Text, ReplyPreviewLimit)
	if cut {
		text += ContinuationMarker
	}
	return ReplyPreview{Sender: sender, Text: text, Truncated: cut}, true
}

// truncateGraphemes keeps the first limit grapheme clusters of s and reports
// whether anything was dropped. Clusters are never split.
func truncateGraphemes(s string, limit int) (string, bool) {
	if limit <= 0 {
		return "", s != ""
	}
	// Fast path: fewer bytes than the limit cannot hold more clusters.
	if len(s) <= limit {
		return s, false
	}

	g := uniseg.NewGraphemes(s)
	n, end := 0, 0
	for g.Next() {
		if n == limit {
			return s[:end], true
		}
		_, end = g.Positions()
		n++
	}
	return s, false
}
