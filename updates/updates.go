// Package updates provides the entry points for building chains: one
// constructor per update kind, each returning a filter with field guards
// suited to that kind.
//
//	updates.Message().Common().WithText(dispatching.Equals("ping")).ByCx(pong)
//	updates.CallbackQuery().WithData(dispatching.Equals("yes")).By(confirm)
package updates

import (
	"github.com/bjaus/dispatching"
	"github.com/bjaus/dispatching/types"
)

// Any matches every update.
func Any() *dispatching.Filter[types.Update] {
	return dispatching.NewFilter(func(u types.Update) (types.Update, bool) {
		return u, true
	})
}

// Message matches new messages.
func Message() *MessageFilter {
	return newMessageFilter(types.Update.Message)
}

// EditedMessage matches edited messages.
func EditedMessage() *MessageFilter {
	return newMessageFilter(types.Update.EditedMessage)
}

// ChannelPost matches new channel posts.
func ChannelPost() *MessageFilter {
	return newMessageFilter(types.Update.ChannelPost)
}

// EditedChannelPost matches edited channel posts.
func EditedChannelPost() *MessageFilter {
	return newMessageFilter(types.Update.EditedChannelPost)
}

// CallbackQuery matches callback queries.
func CallbackQuery() *CallbackQueryFilter {
	return &CallbackQueryFilter{Filter: dispatching.NewFilter(types.Update.CallbackQuery)}
}

// InlineQuery matches inline queries.
func InlineQuery() *InlineQueryFilter {
	return &InlineQueryFilter{Filter: dispatching.NewFilter(types.Update.InlineQuery)}
}
