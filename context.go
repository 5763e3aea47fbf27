package dispatching

import (
	"context"

	"github.com/google/uuid"

	"github.com/bjaus/dispatching/types"
)

// Bot is the host's bot API session. The dispatcher never calls it; it is
// handed to actions through UpdateWithCx.
type Bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// UpdateWithCx pairs a narrowed update payload with the session it arrived
// on. Request it with ByCx.
type UpdateWithCx[T any] struct {
	Bot     Bot
	BotName string

	// UpdateID is the identifier of the update the payload came from.
	UpdateID int64

	// DispatchID correlates log lines and hooks of a single DispatchOne call.
	DispatchID uuid.UUID

	Update T
}

// Reply sends text to the chat the message came from.
func Reply(ctx context.Context, cx UpdateWithCx[types.Message], text string) error {
	if cx.Bot == nil {
		return ErrNoBot
	}
	return cx.Bot.SendMessage(ctx, cx.Update.Chat.ID, text)
}

type botNameKey struct{}

// BotName returns the name of the bot whose dispatcher is evaluating ctx.
// Guards use it to recognise commands addressed as /cmd@botname.
func BotName(ctx context.Context) string {
	name, _ := ctx.Value(botNameKey{}).(string)
	return name
}

func withBotName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, botNameKey{}, name)
}

// envelope is everything a chain needs to build an UpdateWithCx.
type envelope struct {
	bot        Bot
	botName    string
	dispatchID uuid.UUID
	update     types.Update
}

func cxFor[T any](env envelope, v T) UpdateWithCx[T] {
	return UpdateWithCx[T]{
		Bot:        env.bot,
		BotName:    env.botName,
		UpdateID:   env.update.ID,
		DispatchID: env.dispatchID,
		Update:     v,
	}
}
