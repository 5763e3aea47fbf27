package updates

import (
	"context"
	"strings"

	"github.com/bjaus/dispatching"
	"github.com/bjaus/dispatching/types"
)

// MessageFilter is a filter over message-bearing updates. Field guards only
// run once the update is known to carry a message; a message lacking the
// field fails the guard.
type MessageFilter struct {
	*dispatching.Filter[types.Message]
}

func newMessageFilter(narrow func(types.Update) (types.Message, bool)) *MessageFilter {
	return &MessageFilter{Filter: dispatching.NewFilter(narrow)}
}

// Common narrows to messages with user content, excluding service messages
// such as members joining or a pinned message.
func (f *MessageFilter) Common() *MessageFilter {
	return &MessageFilter{Filter: f.Refine(types.Message.IsCommon)}
}

// With adds a guard over the whole message.
func (f *MessageFilter) With(g dispatching.Guard[types.Message]) *MessageFilter {
	return &MessageFilter{Filter: f.Filter.With(g)}
}

// WithText adds a guard over the message text.
func (f *MessageFilter) WithText(g dispatching.Guard[string]) *MessageFilter {
	return f.With(dispatching.Field(messageText, g))
}

// WithChatID adds a guard over the chat identifier.
func (f *MessageFilter) WithChatID(g dispatching.Guard[int64]) *MessageFilter {
	return f.With(dispatching.Field(messageChatID, g))
}

// WithFromID adds a guard over the sender's user identifier.
func (f *MessageFilter) WithFromID(g dispatching.Guard[int64]) *MessageFilter {
	return f.With(dispatching.Field(messageFromID, g))
}

// WithCommand matches /name, /name args and /name@bot args, where bot is
// the dispatcher's bot name. The command name is matched case-insensitively.
func (f *MessageFilter) WithCommand(name string) *MessageFilter {
	return f.With(command(name))
}

// OrWith starts a new branch of the same kind guarded by g.
func (f *MessageFilter) OrWith(g dispatching.Guard[types.Message]) *MessageFilter {
	return &MessageFilter{Filter: f.Filter.OrWith(g)}
}

// OrWithText starts a new branch of the same kind guarded on the text.
func (f *MessageFilter) OrWithText(g dispatching.Guard[string]) *MessageFilter {
	return f.OrWith(dispatching.Field(messageText, g))
}

// OrWithChatID starts a new branch of the same kind guarded on the chat id.
func (f *MessageFilter) OrWithChatID(g dispatching.Guard[int64]) *MessageFilter {
	return f.OrWith(dispatching.Field(messageChatID, g))
}

// OrWithCommand starts a new branch of the same kind matching a command.
func (f *MessageFilter) OrWithCommand(name string) *MessageFilter {
	return f.OrWith(command(name))
}

// Or tries other after every branch of f has failed.
func (f *MessageFilter) Or(other *MessageFilter) *MessageFilter {
	var inner *dispatching.Filter[types.Message]
	if other != nil {
		inner = other.Filter
	}
	return &MessageFilter{Filter: f.Filter.Or(inner)}
}

func messageText(m types.Message) (string, bool) {
	return m.Text, m.HasText()
}

func messageChatID(m types.Message) (int64, bool) {
	return m.Chat.ID, true
}

func messageFromID(m types.Message) (int64, bool) {
	if m.From == nil {
		return 0, false
	}
	return m.From.ID, true
}

type commandGuard struct {
	name string
}

func command(name string) dispatching.Guard[types.Message] {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/")
	if name == "" {
		return nil
	}
	return commandGuard{name: name}
}

func (g commandGuard) Check(ctx context.Context, m types.Message) bool {
	cmd, addressee, ok := parseCommand(m.Text)
	if !ok || !strings.EqualFold(cmd, g.name) {
		return false
	}
	return addressee == "" || strings.EqualFold(addressee, dispatching.BotName(ctx))
}

// parseCommand splits "/cmd@bot args" into its command and addressee.
func parseCommand(text string) (cmd, addressee string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}

	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", "", false
	}
	cmd, addressee, _ = strings.Cut(fields[0], "@")
	if cmd == "" {
		return "", "", false
	}
	return cmd, addressee, true
}
