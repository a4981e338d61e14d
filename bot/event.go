package bot

import (
	"strconv"
	"strings"

	"github.com/studiobeleza/atendbot-go/telegram"
)

// Event is one inbound interaction: either free text (Text set) or a
// button press (Data and CallbackID set). MessageID identifies the
// menu message a press came from, so that menu can be edited in place.
type Event struct {
	UserID     string
	Text       string
	Data       string
	CallbackID string
	MessageID  int64
}

// EventFromUpdate maps a Telegram update onto the transport-agnostic
// event the processor consumes. Updates the bot does not handle
// (edits, media, joins) report ok=false.
func EventFromUpdate(u telegram.Update) (Event, bool) {
	switch {
	case u.CallbackQuery != nil:
		ev := Event{
			Data:       u.CallbackQuery.Data,
			CallbackID: u.CallbackQuery.ID,
		}
		if u.CallbackQuery.Message != nil {
			ev.UserID = strconv.FormatInt(u.CallbackQuery.Message.Chat.ID, 10)
			ev.MessageID = u.CallbackQuery.Message.MessageID
		} else if u.CallbackQuery.From != nil {
			ev.UserID = strconv.FormatInt(u.CallbackQuery.From.ID, 10)
		}
		return ev, ev.UserID != "" && ev.Data != ""

	case u.Message != nil:
		text := strings.TrimSpace(u.Message.Text)
		if text == "" {
			return Event{}, false
		}
		return Event{
			UserID: strconv.FormatInt(u.Message.Chat.ID, 10),
			Text:   text,
		}, true
	}

	return Event{}, false
}
