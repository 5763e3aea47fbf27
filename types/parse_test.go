package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ParseUpdateSuite struct {
	suite.Suite
}

func TestParseUpdateSuite(t *testing.T) {
	suite.Run(t, new(ParseUpdateSuite))
}

func (s *ParseUpdateSuite) TestParsesMessage() {
	raw := []byte(`{
		"update_id": 42,
		"message": {
			"message_id": 7,
			"date": 1700000000,
			"chat": {"id": 10, "type": "private"},
			"from": {"id": 3, "is_bot": false, "first_name": "Ann"},
			"text": "hello"
		}
	}`)

	u, err := ParseUpdate(raw)
	s.Require().NoError(err)
	s.Assert().Equal(int64(42), u.ID)

	m, ok := u.Message()
	s.Require().True(ok)
	s.Assert().Equal(int64(7), m.ID)
	s.Assert().Equal(int64(10), m.Chat.ID)
	s.Assert().Equal("hello", m.Text)
	s.Require().NotNil(m.From)
	s.Assert().Equal("Ann", m.From.FirstName)
}

func (s *ParseUpdateSuite) TestParsesEditedMessage() {
	raw := []byte(`{"update_id": 1, "edited_message": {"message_id": 2, "date": 0, "chat": {"id": 5, "type": "group"}, "text": "fixed"}}`)

	u, err := ParseUpdate(raw)
	s.Require().NoError(err)

	_, ok := u.Message()
	s.Assert().False(ok)

	m, ok := u.EditedMessage()
	s.Require().True(ok)
	s.Assert().Equal("fixed", m.Text)
}

func (s *ParseUpdateSuite) TestParsesChannelPosts() {
	u, err := ParseUpdate([]byte(`{"update_id": 1, "channel_post": {"message_id": 2, "chat": {"id": -100, "type": "channel"}, "text": "news"}}`))
	s.Require().NoError(err)
	m, ok := u.ChannelPost()
	s.Require().True(ok)
	s.Assert().Equal(int64(-100), m.Chat.ID)

	u, err = ParseUpdate([]byte(`{"update_id": 2, "edited_channel_post": {"message_id": 2, "chat": {"id": -100, "type": "channel"}, "text": "news!"}}`))
	s.Require().NoError(err)
	m, ok = u.EditedChannelPost()
	s.Require().True(ok)
	s.Assert().Equal("news!", m.Text)
}

func (s *ParseUpdateSuite) TestParsesCallbackQuery() {
	raw := []byte(`{"update_id": 9, "callback_query": {"id": "cb1", "from": {"id": 3, "first_name": "Ann"}, "chat_instance": "ci", "data": "yes"}}`)

	u, err := ParseUpdate(raw)
	s.Require().NoError(err)

	q, ok := u.CallbackQuery()
	s.Require().True(ok)
	s.Assert().Equal("cb1", q.ID)
	s.Assert().Equal("yes", q.Data)
	s.Assert().Equal(int64(3), q.From.ID)
}

func (s *ParseUpdateSuite) TestParsesInlineQuery() {
	raw := []byte(`{"update_id": 9, "inline_query": {"id": "iq", "from": {"id": 3, "first_name": "Ann"}, "query": "cats", "offset": ""}}`)

	u, err := ParseUpdate(raw)
	s.Require().NoError(err)

	q, ok := u.InlineQuery()
	s.Require().True(ok)
	s.Assert().Equal("cats", q.Query)
}

func (s *ParseUpdateSuite) TestRejectsInvalidJSON() {
	_, err := ParseUpdate([]byte(`{not valid}`))
	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *ParseUpdateSuite) TestRejectsMissingID() {
	_, err := ParseUpdate([]byte(`{"message": {"message_id": 1, "chat": {"id": 1}}}`))
	s.Assert().ErrorIs(err, ErrMissingID)
}

func (s *ParseUpdateSuite) TestRejectsUnknownKind() {
	_, err := ParseUpdate([]byte(`{"update_id": 1, "poll": {"id": "p"}}`))
	s.Assert().ErrorIs(err, ErrUnknownKind)
}

func (s *ParseUpdateSuite) TestWrapsPayloadDecodeErrors() {
	_, err := ParseUpdate([]byte(`{"update_id": 1, "message": {"message_id": "not a number"}}`))
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "decode message")
}
