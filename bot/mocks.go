package bot

import (
	"context"
	"errors"
	"sync"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/records"
	"github.com/studiobeleza/atendbot-go/telegram"
)

// MockStore is an in-memory records.Store used by tests and local runs.
type MockStore struct {
	mu           sync.Mutex
	Records      []records.Record
	CatalogData  []records.CatalogEntry
	FailAppend   bool
	FailQuery    bool
	FailCatalog  bool
	AppendCalls  int
	QueryCalls   int
	CatalogCalls int
}

func (m *MockStore) Append(ctx context.Context, rec records.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendCalls++
	if m.FailAppend {
		return errors.New("mock append failure")
	}
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockStore) Query(ctx context.Context, r period.DateRange) ([]records.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueryCalls++
	if m.FailQuery {
		return nil, errors.New("mock query failure")
	}
	var out []records.Record
	for _, rec := range m.Records {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *MockStore) Catalog(ctx context.Context) ([]records.CatalogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CatalogCalls++
	if m.FailCatalog {
		return nil, errors.New("mock catalog failure")
	}
	return m.CatalogData, nil
}

// SentMessage captures one outbound message for assertions. Edited
// marks in-place menu edits; MessageID is the edited message.
type SentMessage struct {
	UserID    string
	Text      string
	Keyboard  [][]telegram.InlineKeyboardButton
	Edited    bool
	MessageID int64
}

// MockTransport records every outbound message instead of sending it.
type MockTransport struct {
	mu       sync.Mutex
	Sent     []SentMessage
	FailSend bool
}

func (m *MockTransport) SendText(ctx context.Context, chatID, text string) error {
	return m.record(SentMessage{UserID: chatID, Text: text})
}

func (m *MockTransport) SendKeyboard(ctx context.Context, chatID, text string, keyboard [][]telegram.InlineKeyboardButton) error {
	return m.record(SentMessage{UserID: chatID, Text: text, Keyboard: keyboard})
}

func (m *MockTransport) EditMessageText(ctx context.Context, chatID string, messageID int64, text string, keyboard [][]telegram.InlineKeyboardButton) error {
	return m.record(SentMessage{UserID: chatID, Text: text, Keyboard: keyboard, Edited: true, MessageID: messageID})
}

func (m *MockTransport) AnswerCallback(ctx context.Context, callbackQueryID string) error {
	return nil
}

func (m *MockTransport) record(msg SentMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSend {
		return errors.New("mock send failure")
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// LastText returns the most recent outbound text, or "".
func (m *MockTransport) LastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return ""
	}
	return m.Sent[len(m.Sent)-1].Text
}
