package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/bjaus/dispatching"
	"github.com/bjaus/dispatching/types"
	"github.com/bjaus/dispatching/updates"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func tgMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 7,
		Date:      1700000000,
		From:      &tgbotapi.User{ID: 3, FirstName: "Ann", UserName: "ann"},
		Chat:      &tgbotapi.Chat{ID: 10, Type: "private", UserName: "ann"},
		Text:      text,
	}
}

type ConvertSuite struct {
	suite.Suite
}

func TestConvertSuite(t *testing.T) {
	suite.Run(t, new(ConvertSuite))
}

func (s *ConvertSuite) TestMessage() {
	u, ok := ConvertUpdate(tgbotapi.Update{UpdateID: 5, Message: tgMessage("hi")})
	s.Require().True(ok)
	s.Assert().Equal(int64(5), u.ID)

	m, ok := u.Message()
	s.Require().True(ok)
	s.Assert().Equal(int64(7), m.ID)
	s.Assert().Equal(int64(1700000000), m.Date)
	s.Assert().Equal("hi", m.Text)
	s.Assert().Equal(types.Chat{ID: 10, Type: "private", Username: "ann"}, m.Chat)
	s.Require().NotNil(m.From)
	s.Assert().Equal("ann", m.From.Username)
}

func (s *ConvertSuite) TestServiceMessage() {
	tm := tgMessage("")
	tm.NewChatMembers = []tgbotapi.User{{ID: 4, FirstName: "Bob"}}
	tm.PinnedMessage = tgMessage("pinned")

	u, ok := ConvertUpdate(tgbotapi.Update{UpdateID: 1, Message: tm})
	s.Require().True(ok)

	m, _ := u.Message()
	s.Assert().Equal(types.KindNewChatMembers, m.Kind())
	s.Require().Len(m.NewChatMembers, 1)
	s.Assert().Equal(int64(4), m.NewChatMembers[0].ID)
	s.Require().NotNil(m.PinnedMessage)
	s.Assert().Equal("pinned", m.PinnedMessage.Text)
}

func (s *ConvertSuite) TestMessageVariants() {
	u, ok := ConvertUpdate(tgbotapi.Update{UpdateID: 1, EditedMessage: tgMessage("e")})
	s.Require().True(ok)
	_, ok = u.EditedMessage()
	s.Assert().True(ok)

	u, ok = ConvertUpdate(tgbotapi.Update{UpdateID: 1, ChannelPost: tgMessage("c")})
	s.Require().True(ok)
	_, ok = u.ChannelPost()
	s.Assert().True(ok)

	u, ok = ConvertUpdate(tgbotapi.Update{UpdateID: 1, EditedChannelPost: tgMessage("ec")})
	s.Require().True(ok)
	_, ok = u.EditedChannelPost()
	s.Assert().True(ok)
}

func (s *ConvertSuite) TestCallbackQuery() {
	u, ok := ConvertUpdate(tgbotapi.Update{UpdateID: 2, CallbackQuery: &tgbotapi.CallbackQuery{
		ID:           "cb",
		From:         &tgbotapi.User{ID: 3},
		Message:      tgMessage("menu"),
		ChatInstance: "ci",
		Data:         "yes",
	}})
	s.Require().True(ok)

	q, ok := u.CallbackQuery()
	s.Require().True(ok)
	s.Assert().Equal("cb", q.ID)
	s.Assert().Equal("yes", q.Data)
	s.Assert().Equal(int64(3), q.From.ID)
	s.Require().NotNil(q.Message)
	s.Assert().Equal("menu", q.Message.Text)
}

func (s *ConvertSuite) TestInlineQuery() {
	u, ok := ConvertUpdate(tgbotapi.Update{UpdateID: 3, InlineQuery: &tgbotapi.InlineQuery{
		ID:    "iq",
		From:  &tgbotapi.User{ID: 3},
		Query: "cats",
	}})
	s.Require().True(ok)

	q, ok := u.InlineQuery()
	s.Require().True(ok)
	s.Assert().Equal("cats", q.Query)
}

func (s *ConvertSuite) TestUnsupportedKind() {
	_, ok := ConvertUpdate(tgbotapi.Update{UpdateID: 4})
	s.Assert().False(ok)
}

func TestBot_SendMessage(t *testing.T) {
	t.Run("sends a text message", func(t *testing.T) {
		sender := &fakeSender{}
		err := NewBot(sender).SendMessage(context.Background(), 10, "hello")
		require.NoError(t, err)

		require.Len(t, sender.sent, 1)
		msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, int64(10), msg.ChatID)
		assert.Equal(t, "hello", msg.Text)
	})

	t.Run("returns send errors", func(t *testing.T) {
		wantErr := errors.New("network")
		err := NewBot(&fakeSender{err: wantErr}).SendMessage(context.Background(), 10, "hello")
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("does not send on a cancelled context", func(t *testing.T) {
		sender := &fakeSender{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewBot(sender).SendMessage(ctx, 10, "hello")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, sender.sent)
	})
}

func TestDispatch(t *testing.T) {
	sender := &fakeSender{}
	d := dispatching.NewBuilder(NewBot(sender), "my_bot").
		Handle(updates.Message().WithCommand("ping").ByCx(func(ctx context.Context, cx dispatching.UpdateWithCx[types.Message]) error {
			return dispatching.Reply(ctx, cx, "pong")
		})).
		ErrorHandler(func(ctx context.Context, err error) { t.Errorf("unexpected error: %v", err) }).
		MustBuild()

	ok := Dispatch(context.Background(), d, tgbotapi.Update{UpdateID: 1, Message: tgMessage("/ping@my_bot")})
	require.True(t, ok)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "pong", sender.sent[0].(tgbotapi.MessageConfig).Text)

	assert.False(t, Dispatch(context.Background(), d, tgbotapi.Update{UpdateID: 2}))
}
