package types

// Chat is the conversation a message belongs to.
type Chat struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title,omitempty"`
	Username string `json:"username,omitempty"`
}

// User is a platform user or bot.
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// MessageKind separates user content from service messages.
type MessageKind int

const (
	// KindCommon is an ordinary message with user content.
	KindCommon MessageKind = iota
	KindNewChatMembers
	KindLeftChatMember
	KindNewChatTitle
	KindPinned
)

func (k MessageKind) String() string {
	switch k {
	case KindCommon:
		return "common"
	case KindNewChatMembers:
		return "new_chat_members"
	case KindLeftChatMember:
		return "left_chat_member"
	case KindNewChatTitle:
		return "new_chat_title"
	case KindPinned:
		return "pinned"
	default:
		return "unknown"
	}
}

// Message is a chat message. Text is empty when the message has none.
type Message struct {
	ID             int64    `json:"message_id"`
	Date           int64    `json:"date"`
	Chat           Chat     `json:"chat"`
	From           *User    `json:"from,omitempty"`
	Text           string   `json:"text,omitempty"`
	Caption        string   `json:"caption,omitempty"`
	ReplyTo        *Message `json:"reply_to_message,omitempty"`
	NewChatMembers []User   `json:"new_chat_members,omitempty"`
	LeftChatMember *User    `json:"left_chat_member,omitempty"`
	NewChatTitle   string   `json:"new_chat_title,omitempty"`
	PinnedMessage  *Message `json:"pinned_message,omitempty"`
}

// HasText reports whether the message carries text.
func (m Message) HasText() bool {
	return m.Text != ""
}

// Kind derives the message kind from its service fields.
func (m Message) Kind() MessageKind {
	switch {
	case len(m.NewChatMembers) > 0:
		return KindNewChatMembers
	case m.LeftChatMember != nil:
		return KindLeftChatMember
	case m.NewChatTitle != "":
		return KindNewChatTitle
	case m.PinnedMessage != nil:
		return KindPinned
	default:
		return KindCommon
	}
}

// IsCommon reports whether the message carries user content rather than a
// service event.
func (m Message) IsCommon() bool {
	return m.Kind() == KindCommon
}

// CallbackQuery is sent when a user presses an inline keyboard button.
type CallbackQuery struct {
	ID              string   `json:"id"`
	From            User     `json:"from"`
	Message         *Message `json:"message,omitempty"`
	InlineMessageID string   `json:"inline_message_id,omitempty"`
	ChatInstance    string   `json:"chat_instance"`
	Data            string   `json:"data,omitempty"`
}

// InlineQuery is an incoming inline query.
type InlineQuery struct {
	ID     string `json:"id"`
	From   User   `json:"from"`
	Query  string `json:"query"`
	Offset string `json:"offset"`
}
