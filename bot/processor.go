package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/studiobeleza/atendbot-go/records"
	"github.com/studiobeleza/atendbot-go/session"
	"github.com/studiobeleza/atendbot-go/telegram"
)

// Processor is the conversation controller: it owns the session store
// and routes every inbound event through the per-state handlers. All
// errors from collaborators are recovered here by re-prompting; none
// escape to crash a session.
type Processor struct {
	sessions  *session.Store
	store     records.Store
	transport TransportClient
	history   HistoryLog
	exporter  Exporter
	now       func() time.Time
}

func NewProcessor(store records.Store, transport TransportClient, history HistoryLog, exporter Exporter) *Processor {
	return &Processor{
		sessions:  session.NewStore(),
		store:     store,
		transport: transport,
		history:   history,
		exporter:  exporter,
		now:       time.Now,
	}
}

// Sessions exposes the session store for the health endpoint.
func (p *Processor) Sessions() *session.Store {
	return p.sessions
}

// Process handles one inbound event end to end. A user's events are
// serialized on the session lock, so two users are serviced
// interleaved while a single session never sees concurrent writers.
func (p *Processor) Process(ctx context.Context, ev Event) {
	log.Info().
		Str("user_id", ev.UserID).
		Str("text", ev.Text).
		Str("data", ev.Data).
		Msg("Processing event")

	if p.history != nil {
		inbound := ev.Text
		if inbound == "" {
			inbound = "[botão] " + ev.Data
		}
		if err := p.history.AddUserMessage(ev.UserID, inbound); err != nil {
			log.Error().Err(err).Str("user_id", ev.UserID).Msg("Error logging user message")
		}
	}

	if ev.CallbackID != "" {
		if err := p.transport.AnswerCallback(ctx, ev.CallbackID); err != nil {
			log.Error().Err(err).Str("user_id", ev.UserID).Msg("Error answering callback")
		}
	}

	sess := p.sessions.Get(ev.UserID)
	sess.Lock()
	defer sess.Unlock()

	// Cancel and menu commands work from any state and discard
	// pending input; records already appended stay appended.
	switch {
	case ev.Text == "/cancelar":
		sess.ResetToMenu()
		p.send(ctx, ev.UserID, "Operação cancelada. Voltando ao menu principal.")
		p.showMainMenu(ctx, ev.UserID)
		return
	case ev.Text == "/start" || ev.Text == "/menu" || ev.Data == "menu_back":
		sess.ResetToMenu()
		p.replyKeyboard(ctx, ev, mainMenuText, mainMenuKeyboard())
		return
	}

	switch sess.State {
	case session.StateMainMenu:
		p.handleMainMenu(ctx, sess, ev)
	case session.StateAwaitRegDate:
		p.handleAwaitRegDate(ctx, sess, ev)
	case session.StateAwaitRegEntry:
		p.handleAwaitRegEntry(ctx, sess, ev)
	case session.StateAwaitCalcMode:
		p.handleAwaitCalcMode(ctx, sess, ev)
	case session.StateAwaitCalcArgs:
		p.handleAwaitCalcArgs(ctx, sess, ev)
	case session.StateAwaitListDate:
		p.handleAwaitListDate(ctx, sess, ev)
	case session.StateReportsMenu:
		p.handleReportsMenu(ctx, sess, ev)
	default:
		sess.ResetToMenu()
		p.showMainMenu(ctx, ev.UserID)
	}
}

func (p *Processor) send(ctx context.Context, userID, text string) {
	if err := p.transport.SendText(ctx, userID, text); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Error sending message")
		return
	}
	p.logOutbound(userID, text)
}

// replyKeyboard shows a menu in response to an event. When the event
// was a button press the pressed menu message is edited in place, so
// navigating does not stack stale menus in the chat; text input gets
// a fresh message.
func (p *Processor) replyKeyboard(ctx context.Context, ev Event, text string, keyboard [][]telegram.InlineKeyboardButton) {
	if ev.MessageID != 0 {
		err := p.transport.EditMessageText(ctx, ev.UserID, ev.MessageID, text, keyboard)
		if err == nil {
			p.logOutbound(ev.UserID, text)
			return
		}
		log.Warn().Err(err).Str("user_id", ev.UserID).Msg("Error editing menu message, sending a new one")
	}
	p.sendKeyboard(ctx, ev.UserID, text, keyboard)
}

func (p *Processor) sendKeyboard(ctx context.Context, userID, text string, keyboard [][]telegram.InlineKeyboardButton) {
	if err := p.transport.SendKeyboard(ctx, userID, text, keyboard); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Error sending keyboard")
		return
	}
	p.logOutbound(userID, text)
}

func (p *Processor) logOutbound(userID, text string) {
	if p.history == nil {
		return
	}
	if err := p.history.AddBotMessage(userID, text); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Error logging bot message")
	}
}
