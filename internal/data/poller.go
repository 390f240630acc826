package data

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchTimeout bounds a single directory scan.
const fetchTimeout = 10 * time.Second

// ConversationTickMsg triggers a transcript reload on the bubbletea event loop.
type ConversationTickMsg time.Time

// ConversationUpdateMsg carries freshly loaded conversations back to the model.
// Manual is set for user-requested reloads, which must not schedule another
// poll: only the poll chain does that.
type ConversationUpdateMsg struct {
	Conversations []Conversation
	Err           error
	FetchedAt     time.Time
	Manual        bool
}

// ScheduleConversationPoll returns a tea.Tick command for the next reload.
func ScheduleConversationPoll(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ConversationTickMsg(t)
	})
}

// FetchConversationsCmd returns a tea.Cmd that loads transcripts in the
// background as part of the poll chain.
func FetchConversationsCmd(store *Store) tea.Cmd {
	return fetchConversations(store, false)
}

// RefreshConversationsCmd loads transcripts outside the poll chain.
func RefreshConversationsCmd(store *Store) tea.Cmd {
	return fetchConversations(store, true)
}

func fetchConversations(store *Store, manual bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		convs, err := store.ListConversations(ctx)
		return ConversationUpdateMsg{
			Conversations: convs,
			Err:           err,
			FetchedAt:     time.Now(),
			Manual:        manual,
		}
	}
}
