package types

// Update is one incoming platform event. It carries a unique identifier and
// exactly one payload in Kind.
type Update struct {
	ID   int64
	Kind UpdateKind
}

// NewUpdate creates an Update carrying kind.
func NewUpdate(id int64, kind UpdateKind) Update {
	return Update{ID: id, Kind: kind}
}

// UpdateKind is implemented by every payload an Update can carry:
// Message, EditedMessage, ChannelPost, EditedChannelPost, CallbackQuery
// and InlineQuery.
type UpdateKind interface {
	updateKind()
}

// EditedMessage is a new version of a message that was edited.
type EditedMessage struct{ Message }

// ChannelPost is a message posted to a channel.
type ChannelPost struct{ Message }

// EditedChannelPost is a new version of a channel post that was edited.
type EditedChannelPost struct{ Message }

func (Message) updateKind()           {}
func (EditedMessage) updateKind()     {}
func (ChannelPost) updateKind()       {}
func (EditedChannelPost) updateKind() {}
func (CallbackQuery) updateKind()     {}
func (InlineQuery) updateKind()       {}

// Message returns the payload if the update is a new message.
func (u Update) Message() (Message, bool) {
	m, ok := u.Kind.(Message)
	return m, ok
}

// EditedMessage returns the edited message if the update carries one.
func (u Update) EditedMessage() (Message, bool) {
	m, ok := u.Kind.(EditedMessage)
	return m.Message, ok
}

// ChannelPost returns the channel post if the update carries one.
func (u Update) ChannelPost() (Message, bool) {
	m, ok := u.Kind.(ChannelPost)
	return m.Message, ok
}

// EditedChannelPost returns the edited channel post if the update carries one.
func (u Update) EditedChannelPost() (Message, bool) {
	m, ok := u.Kind.(EditedChannelPost)
	return m.Message, ok
}

// CallbackQuery returns the payload if the update is a callback query.
func (u Update) CallbackQuery() (CallbackQuery, bool) {
	q, ok := u.Kind.(CallbackQuery)
	return q, ok
}

// InlineQuery returns the payload if the update is an inline query.
func (u Update) InlineQuery() (InlineQuery, bool) {
	q, ok := u.Kind.(InlineQuery)
	return q, ok
}
