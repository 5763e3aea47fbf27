package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidJSON is returned when the input is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrMissingID is returned when the update has no update_id.
	ErrMissingID = errors.New("missing update_id")

	// ErrUnknownKind is returned when the update carries no supported payload.
	ErrUnknownKind = errors.New("unknown update kind")
)

// kindDecoder maps a payload field of the Bot API update object to its
// UpdateKind.
type kindDecoder struct {
	field  string
	decode func(raw []byte) (UpdateKind, error)
}

var kindDecoders = []kindDecoder{
	{field: "message", decode: decode[Message]},
	{field: "edited_message", decode: decodeMessage(func(m Message) UpdateKind { return EditedMessage{m} })},
	{field: "channel_post", decode: decodeMessage(func(m Message) UpdateKind { return ChannelPost{m} })},
	{field: "edited_channel_post", decode: decodeMessage(func(m Message) UpdateKind { return EditedChannelPost{m} })},
	{field: "callback_query", decode: decode[CallbackQuery]},
	{field: "inline_query", decode: decode[InlineQuery]},
}

// ParseUpdate decodes a Bot API update object. The payload kind is detected
// by field presence before the payload itself is decoded, so only the
// matching sub-document is unmarshaled.
func ParseUpdate(raw []byte) (Update, error) {
	if !gjson.ValidBytes(raw) {
		return Update{}, ErrInvalidJSON
	}

	id := gjson.GetBytes(raw, "update_id")
	if !id.Exists() || id.Type != gjson.Number {
		return Update{}, ErrMissingID
	}

	for _, kd := range kindDecoders {
		r := gjson.GetBytes(raw, kd.field)
		if !r.Exists() || !r.IsObject() {
			continue
		}
		kind, err := kd.decode([]byte(r.Raw))
		if err != nil {
			return Update{}, fmt.Errorf("decode %s: %w", kd.field, err)
		}
		return NewUpdate(id.Int(), kind), nil
	}

	return Update{}, ErrUnknownKind
}

func decode[T UpdateKind](raw []byte) (UpdateKind, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeMessage(wrap func(Message) UpdateKind) func([]byte) (UpdateKind, error) {
	return func(raw []byte) (UpdateKind, error) {
		var m Message
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		return wrap(m), nil
	}
}
