package render

import (
	"github.com/tnguyen21/kestral-chat/internal/chat"
	"github.com/tnguyen21/kestral-chat/internal/data"
)

// FromConversation converts a stored conversation into bubbles. Run positions
// are taken over every message, including ones that will not render.
func FromConversation(c data.Conversation) []Message {
	positions := chat.RunPositions(c.Senders(), c.Self)
	msgs := make([]Message, len(c.Messages))
	for i, m := range c.Messages {
		msgs[i] = Message{
			ID:       m.ID,
			Sender:   m.Sender,
			Text:     m.Text,
			Status:   m.Status,
			Position: positions[i],
			Reply:    c.Replied(m.ReplyTo),
		}
	}
	return msgs
}
