package types

import (
	"testing"
)

func TestMessage_Kind(t *testing.T) {
	t.Run("plain text is common", func(t *testing.T) {
		m := Message{Text: "hi"}
		if !m.IsCommon() {
			t.Errorf("kind = %v, want common", m.Kind())
		}
	})

	t.Run("service messages are not common", func(t *testing.T) {
		cases := map[MessageKind]Message{
			KindNewChatMembers: {NewChatMembers: []User{{ID: 1}}},
			KindLeftChatMember: {LeftChatMember: &User{ID: 1}},
			KindNewChatTitle:   {NewChatTitle: "new"},
			KindPinned:         {PinnedMessage: &Message{ID: 1}},
		}
		for want, m := range cases {
			if got := m.Kind(); got != want {
				t.Errorf("kind = %v, want %v", got, want)
			}
			if m.IsCommon() {
				t.Errorf("%v reported as common", want)
			}
		}
	})

	t.Run("HasText", func(t *testing.T) {
		if (Message{}).HasText() {
			t.Error("empty message reported text")
		}
		if !(Message{Text: "x"}).HasText() {
			t.Error("text message reported no text")
		}
	})
}

func TestUpdate_Accessors(t *testing.T) {
	u := NewUpdate(3, CallbackQuery{ID: "q"})

	if u.ID != 3 {
		t.Errorf("id = %d, want 3", u.ID)
	}
	if _, ok := u.Message(); ok {
		t.Error("callback query reported as message")
	}
	if q, ok := u.CallbackQuery(); !ok || q.ID != "q" {
		t.Errorf("callback query = %+v, %v", q, ok)
	}
	if _, ok := u.EditedMessage(); ok {
		t.Error("callback query reported as edited message")
	}
}
