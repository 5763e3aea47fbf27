// Package telegram connects a dispatcher to github.com/go-telegram-bot-api/telegram-bot-api.
// It converts that library's updates into types.Update and exposes a
// *tgbotapi.BotAPI as a dispatching.Bot. Fetching updates stays with the
// host:
//
//	api, _ := tgbotapi.NewBotAPI(token)
//	d := dispatching.NewBuilder(telegram.NewBot(api), api.Self.UserName).
//	    Handle(...).
//	    ErrorHandler(...).
//	    MustBuild()
//
//	for u := range api.GetUpdatesChan(tgbotapi.NewUpdate(0)) {
//	    telegram.Dispatch(ctx, d, u)
//	}
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bjaus/dispatching"
	"github.com/bjaus/dispatching/types"
)

// Sender is the part of *tgbotapi.BotAPI the Bot needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot adapts a Sender to dispatching.Bot.
type Bot struct {
	sender Sender
}

var _ dispatching.Bot = (*Bot)(nil)

// NewBot wraps s, typically a *tgbotapi.BotAPI.
func NewBot(s Sender) *Bot {
	return &Bot{sender: s}
}

// SendMessage sends a plain text message to chatID.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := b.sender.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// Dispatch converts u and hands it to d. It reports false, without
// dispatching, when u carries a payload kind the dispatcher does not model.
func Dispatch(ctx context.Context, d *dispatching.Dispatcher, u tgbotapi.Update) bool {
	update, ok := ConvertUpdate(u)
	if !ok {
		return false
	}
	d.DispatchOne(ctx, update)
	return true
}

// ConvertUpdate converts u. It reports false for payload kinds without a
// types counterpart, such as polls or shipping queries.
func ConvertUpdate(u tgbotapi.Update) (types.Update, bool) {
	id := int64(u.UpdateID)
	switch {
	case u.Message != nil:
		return types.NewUpdate(id, convertMessage(u.Message)), true
	case u.EditedMessage != nil:
		return types.NewUpdate(id, types.EditedMessage{Message: convertMessage(u.EditedMessage)}), true
	case u.ChannelPost != nil:
		return types.NewUpdate(id, types.ChannelPost{Message: convertMessage(u.ChannelPost)}), true
	case u.EditedChannelPost != nil:
		return types.NewUpdate(id, types.EditedChannelPost{Message: convertMessage(u.EditedChannelPost)}), true
	case u.CallbackQuery != nil:
		return types.NewUpdate(id, convertCallbackQuery(u.CallbackQuery)), true
	case u.InlineQuery != nil:
		return types.NewUpdate(id, convertInlineQuery(u.InlineQuery)), true
	default:
		return types.Update{}, false
	}
}

func convertMessage(m *tgbotapi.Message) types.Message {
	out := types.Message{
		ID:             int64(m.MessageID),
		Date:           int64(m.Date),
		From:           convertUserPtr(m.From),
		Text:           m.Text,
		Caption:        m.Caption,
		LeftChatMember: convertUserPtr(m.LeftChatMember),
		NewChatTitle:   m.NewChatTitle,
	}
	if m.Chat != nil {
		out.Chat = types.Chat{
			ID:       m.Chat.ID,
			Type:     m.Chat.Type,
			Title:    m.Chat.Title,
			Username: m.Chat.UserName,
		}
	}
	if m.ReplyToMessage != nil {
		reply := convertMessage(m.ReplyToMessage)
		out.ReplyTo = &reply
	}
	if m.PinnedMessage != nil {
		pinned := convertMessage(m.PinnedMessage)
		out.PinnedMessage = &pinned
	}
	for _, u := range m.NewChatMembers {
		out.NewChatMembers = append(out.NewChatMembers, convertUser(u))
	}
	return out
}

func convertCallbackQuery(q *tgbotapi.CallbackQuery) types.CallbackQuery {
	out := types.CallbackQuery{
		ID:              q.ID,
		InlineMessageID: q.InlineMessageID,
		ChatInstance:    q.ChatInstance,
		Data:            q.Data,
	}
	if q.From != nil {
		out.From = convertUser(*q.From)
	}
	if q.Message != nil {
		m := convertMessage(q.Message)
		out.Message = &m
	}
	return out
}

func convertInlineQuery(q *tgbotapi.InlineQuery) types.InlineQuery {
	out := types.InlineQuery{
		ID:     q.ID,
		Query:  q.Query,
		Offset: q.Offset,
	}
	if q.From != nil {
		out.From = convertUser(*q.From)
	}
	return out
}

func convertUser(u tgbotapi.User) types.User {
	return types.User{
		ID:           u.ID,
		IsBot:        u.IsBot,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.UserName,
		LanguageCode: u.LanguageCode,
	}
}

func convertUserPtr(u *tgbotapi.User) *types.User {
	if u == nil {
		return nil
	}
	cu := convertUser(*u)
	return &cu
}
