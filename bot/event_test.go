package bot

import (
	"testing"

	"github.com/studiobeleza/atendbot-go/telegram"
)

func TestEventFromUpdate_CallbackCarriesMessageID(t *testing.T) {
	update := telegram.Update{
		CallbackQuery: &telegram.CallbackQuery{
			ID:   "cb-9",
			Data: "menu_calcular",
			Message: &telegram.Message{
				MessageID: 42,
				Chat:      telegram.Chat{ID: 123},
			},
		},
	}

	ev, ok := EventFromUpdate(update)
	if !ok {
		t.Fatal("Expected a handled event")
	}
	if ev.UserID != "123" || ev.Data != "menu_calcular" || ev.CallbackID != "cb-9" {
		t.Errorf("Unexpected event mapping: %+v", ev)
	}
	if ev.MessageID != 42 {
		t.Errorf("Expected message id 42 for in-place menu edits, got %d", ev.MessageID)
	}
}

func TestEventFromUpdate_TextMessage(t *testing.T) {
	update := telegram.Update{
		Message: &telegram.Message{
			MessageID: 7,
			Chat:      telegram.Chat{ID: 123},
			Text:      "  Maria RF 150  ",
		},
	}

	ev, ok := EventFromUpdate(update)
	if !ok {
		t.Fatal("Expected a handled event")
	}
	if ev.Text != "Maria RF 150" {
		t.Errorf("Expected trimmed text, got %q", ev.Text)
	}
	if ev.MessageID != 0 {
		t.Errorf("Expected no edit target for text input, got %d", ev.MessageID)
	}
}

func TestEventFromUpdate_UnhandledUpdates(t *testing.T) {
	for _, update := range []telegram.Update{
		{},
		{Message: &telegram.Message{Chat: telegram.Chat{ID: 1}}},
	} {
		if _, ok := EventFromUpdate(update); ok {
			t.Errorf("Expected update to be skipped: %+v", update)
		}
	}
}
