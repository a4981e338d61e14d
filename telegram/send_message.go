package telegram

import (
	"context"
)

// SendText sends a plain text message to a chat.
func (c *Client) SendText(ctx context.Context, chatID, text string) error {
	return c.callMethod(ctx, "sendMessage", sendMessagePayload{
		ChatID: chatID,
		Text:   text,
	})
}

// SendKeyboard sends a message with an inline keyboard of labeled
// choices below it.
func (c *Client) SendKeyboard(ctx context.Context, chatID, text string, keyboard [][]InlineKeyboardButton) error {
	return c.callMethod(ctx, "sendMessage", sendMessagePayload{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: &inlineKeyboardMarkup{InlineKeyboard: keyboard},
	})
}

// EditMessageText replaces the text (and keyboard) of a previously
// sent message, used to collapse menus the user has already answered.
func (c *Client) EditMessageText(ctx context.Context, chatID string, messageID int64, text string, keyboard [][]InlineKeyboardButton) error {
	payload := editMessagePayload{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	}
	if keyboard != nil {
		payload.ReplyMarkup = &inlineKeyboardMarkup{InlineKeyboard: keyboard}
	}
	return c.callMethod(ctx, "editMessageText", payload)
}

// AnswerCallback acknowledges a button press so the client stops
// showing its loading state.
func (c *Client) AnswerCallback(ctx context.Context, callbackQueryID string) error {
	return c.callMethod(ctx, "answerCallbackQuery", answerCallbackPayload{
		CallbackQueryID: callbackQueryID,
	})
}

// SetMyCommands registers the slash commands shown in the client UI.
func (c *Client) SetMyCommands(ctx context.Context, commands map[string]string) error {
	payload := setMyCommandsPayload{}
	for command, description := range commands {
		payload.Commands = append(payload.Commands, botCommand{
			Command:     command,
			Description: description,
		})
	}
	return c.callMethod(ctx, "setMyCommands", payload)
}
