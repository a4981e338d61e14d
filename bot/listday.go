package bot

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/records"
	"github.com/studiobeleza/atendbot-go/session"
	"github.com/studiobeleza/atendbot-go/telegram"
)

func (p *Processor) startList(ctx context.Context, sess *session.Session, ev Event) {
	sess.State = session.StateAwaitListDate
	keyboard := [][]telegram.InlineKeyboardButton{
		{{Text: "Hoje", CallbackData: "list_hoje"}},
		{{Text: "Outra data (DD/MM/YYYY)", CallbackData: "list_outra"}},
		{{Text: "🔙 Voltar ao Menu", CallbackData: "menu_back"}},
	}
	p.replyKeyboard(ctx, ev, "📅 Para qual data você deseja listar os atendimentos?", keyboard)
}

func (p *Processor) handleAwaitListDate(ctx context.Context, sess *session.Session, ev Event) {
	switch {
	case ev.Data == "list_hoje":
		p.listDayAndReturn(ctx, sess, period.Day(p.now()))
	case ev.Data == "list_outra":
		p.send(ctx, sess.UserID, "📅 Por favor, digite a data no formato DD/MM/YYYY.")
	case ev.Text != "":
		date, err := period.ParseDate(ev.Text)
		if err != nil {
			p.send(ctx, sess.UserID, "⚠️ Data inválida. Use o formato DD/MM/YYYY. Tente novamente ou use /cancelar.")
			return
		}
		p.listDayAndReturn(ctx, sess, date)
	default:
		sess.ResetToMenu()
		p.showMainMenu(ctx, sess.UserID)
	}
}

// listDayAndReturn lists a day and, on success, returns the user to
// the main menu. A store failure keeps the session awaiting a date so
// the same day can be re-entered once the store recovers.
func (p *Processor) listDayAndReturn(ctx context.Context, sess *session.Session, date time.Time) {
	if err := p.listDay(ctx, sess, date); err != nil {
		p.send(ctx, sess.UserID, msgStoreUnavailable)
		return
	}
	sess.ResetToMenu()
	p.showMainMenu(ctx, sess.UserID)
}

// listDay renders every record of a single day plus the day total.
// The query error is returned so callers decide whether state moves.
func (p *Processor) listDay(ctx context.Context, sess *session.Session, date time.Time) error {
	day := period.DateRange{Start: period.Day(date), End: period.Day(date)}
	recs, err := p.store.Query(ctx, day)
	if err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("Error querying records")
		return err
	}

	dateStr := date.Format(period.DateFormat)
	if len(recs) == 0 {
		p.send(ctx, sess.UserID, "ℹ️ Nenhum atendimento encontrado para o dia "+dateStr+".")
		return nil
	}

	catalog, err := p.store.Catalog(ctx)
	if err != nil {
		// Fall back to raw codes rather than failing the listing.
		log.Warn().Err(err).Msg("Error reading catalog for listing, using raw codes")
		catalog = nil
	}

	message := "📋 Atendimentos de " + dateStr + "\n\n"
	total := decimal.Zero
	for _, rec := range recs {
		names := make([]string, len(rec.Procedures))
		for i, code := range rec.Procedures {
			names[i] = records.Describe(catalog, code)
		}
		message += "Paciente: " + rec.Patient + "\n" +
			"Procedimentos: " + strings.Join(names, ", ") + "\n" +
			"Valor: " + formatCurrency(rec.Price) + "\n\n"
		total = total.Add(rec.Price)
	}
	message += "💰 Total do dia: " + formatCurrency(total)

	p.send(ctx, sess.UserID, message)
	return nil
}
