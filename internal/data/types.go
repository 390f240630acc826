// Package data loads conversation transcripts from disk for the chat panes.
package data

import (
	"time"

	"github.com/tnguyen21/kestral-chat/internal/chat"
)

// Conversation is one transcript file.
type Conversation struct {
	ID           string          `yaml:"id"`
	Title        string          `yaml:"title"`
	Self         string          `yaml:"self"` // sender name of the local user
	Participants []string        `yaml:"participants"`
	Messages     []MessageRecord `yaml:"messages"`

	Path string `yaml:"-"`
}

// MessageRecord is a message as stored. Status is kept as written; the
// formatter decides what to do with values it does not recognise.
type MessageRecord struct {
	ID      string              `yaml:"id"`
	Sender  string              `yaml:"sender"`
	Text    string              `yaml:"text"`
	Status  chat.DeliveryStatus `yaml:"status"`
	ReplyTo string              `yaml:"reply_to"`
	SentAt  time.Time           `yaml:"sent_at"`
}

// Replied returns the message that id refers to as a reply quote, or nil
// when id is empty or not part of the conversation.
func (c Conversation) Replied(id string) *chat.RepliedMessage {
	if id == "" {
		return nil
	}
	for _, m := range c.Messages {
		if m.ID == id {
			return &chat.RepliedMessage{SenderName: m.Sender, Text: m.Text}
		}
	}
	return nil
}

// Unread counts incoming messages that have not been read.
func (c Conversation) Unread() int {
	n := 0
	for _, m := range c.Messages {
		if m.Sender != c.Self && m.Status != chat.StatusRead {
			n++
		}
	}
	return n
}

// Last returns the newest message, if any.
func (c Conversation) Last() (MessageRecord, bool) {
	if len(c.Messages) == 0 {
		return MessageRecord{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Senders lists the sender of each message in order.
func (c Conversation) Senders() []string {
	senders := make([]string, len(c.Messages))
	for i, m := range c.Messages {
		senders[i] = m.Sender
	}
	return senders
}
