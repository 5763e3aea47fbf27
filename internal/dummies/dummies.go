// Package dummies builds update payloads for tests.
package dummies

import "github.com/bjaus/dispatching/types"

// TextMessage returns a private-chat text message with zero identifiers.
func TextMessage(text string) types.Message {
	return types.Message{
		ID:   0,
		Date: 0,
		Chat: types.Chat{ID: 0, Type: "private"},
		From: &types.User{ID: 0, FirstName: "firstname"},
		Text: text,
	}
}

// CallbackQuery returns a callback query carrying data.
func CallbackQuery(data string) types.CallbackQuery {
	return types.CallbackQuery{
		ID:           "0",
		From:         types.User{ID: 0, FirstName: "firstname"},
		ChatInstance: "0",
		Data:         data,
	}
}
