package data

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// MessageEnv is the environment a message filter is evaluated against.
//
//	sender == "ana" && !mine
//	status == "read" || text contains "standup"
type MessageEnv struct {
	ID      string `expr:"id"`
	Sender  string `expr:"sender"`
	Text    string `expr:"text"`
	Status  string `expr:"status"`
	Mine    bool   `expr:"mine"`
	IsReply bool   `expr:"is_reply"`
}

// MessageFilter reports whether m of conversation c should be shown.
type MessageFilter func(c Conversation, m MessageRecord) bool

// CompileFilter compiles a filter expression. An empty expression keeps
// every message.
func CompileFilter(src string) (MessageFilter, error) {
	if strings.TrimSpace(src) == "" {
		return func(Conversation, MessageRecord) bool { return true }, nil
	}

	program, err := expr.Compile(src, expr.Env(MessageEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}

	return func(c Conversation, m MessageRecord) bool {
		out, err := expr.Run(program, messageEnv(c, m))
		if err != nil {
			return false
		}
		keep, ok := out.(bool)
		return ok && keep
	}, nil
}

func messageEnv(c Conversation, m MessageRecord) MessageEnv {
	return MessageEnv{
		ID:      m.ID,
		Sender:  m.Sender,
		Text:    m.Text,
		Status:  string(m.Status),
		Mine:    m.Sender == c.Self,
		IsReply: m.ReplyTo != "",
	}
}
