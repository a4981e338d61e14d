package bot

import (
	"context"

	"github.com/studiobeleza/atendbot-go/records"
	"github.com/studiobeleza/atendbot-go/telegram"
)

// TransportClient is the outbound side of the chat boundary: text
// plus optional labeled choices, addressed by chat id.
type TransportClient interface {
	SendText(ctx context.Context, chatID, text string) error
	SendKeyboard(ctx context.Context, chatID, text string, keyboard [][]telegram.InlineKeyboardButton) error
	EditMessageText(ctx context.Context, chatID string, messageID int64, text string, keyboard [][]telegram.InlineKeyboardButton) error
	AnswerCallback(ctx context.Context, callbackQueryID string) error
}

// HistoryLog records both sides of the conversation for the history
// API. A nil log disables auditing.
type HistoryLog interface {
	AddUserMessage(userID, message string) error
	AddBotMessage(userID, message string) error
}

// Exporter turns a record set into a downloadable snapshot.
type Exporter interface {
	ExportCSV(ctx context.Context, recs []records.Record) (string, error)
}
