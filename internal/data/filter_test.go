package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnguyen21/kestral-chat/internal/chat"
)

func filterConversation() Conversation {
	return Conversation{
		ID:   "team",
		Self: "me",
		Messages: []MessageRecord{
			{ID: "m1", Sender: "ana", Text: "standup in 5", Status: chat.StatusRead},
			{ID: "m2", Sender: "me", Text: "on my way", Status: chat.StatusDelivered, ReplyTo: "m1"},
			{ID: "m3", Sender: "bo", Text: "running late", Status: chat.StatusSent},
		},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"empty keeps all", "", []string{"m1", "m2", "m3"}},
		{"sender", `sender == "ana"`, []string{"m1"}},
		{"mine", "mine", []string{"m2"}},
		{"not mine and unread", `!mine && status != "read"`, []string{"m3"}},
		{"text contains", `text contains "late"`, []string{"m3"}},
		{"replies", "is_reply", []string{"m2"}},
	}

	c := filterConversation()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, err := CompileFilter(tt.src)
			require.NoError(t, err)

			var got []string
			for _, m := range c.Messages {
				if keep(c, m) {
					got = append(got, m.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileFilterErrors(t *testing.T) {
	for _, src := range []string{`sender ==`, `sender`, `nosuchfield == 1`} {
		_, err := CompileFilter(src)
		assert.Error(t, err, src)
	}
}
