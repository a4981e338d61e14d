package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/records"
	"github.com/studiobeleza/atendbot-go/session"
	"github.com/studiobeleza/atendbot-go/telegram"
)

func (p *Processor) startRegister(ctx context.Context, sess *session.Session, ev Event) {
	sess.State = session.StateAwaitRegDate
	keyboard := [][]telegram.InlineKeyboardButton{
		{{Text: "Hoje", CallbackData: "reg_hoje"}},
		{{Text: "Outra data (DD/MM/YYYY)", CallbackData: "reg_outra"}},
		{{Text: "🔙 Voltar ao Menu", CallbackData: "menu_back"}},
	}
	p.replyKeyboard(ctx, ev, "🗓️ Para qual data você deseja registrar um atendimento?", keyboard)
}

func (p *Processor) handleAwaitRegDate(ctx context.Context, sess *session.Session, ev Event) {
	switch {
	case ev.Data == "reg_hoje":
		p.setRegisterDate(ctx, sess, period.Day(p.now()))
	case ev.Data == "reg_outra":
		p.send(ctx, sess.UserID, "📅 Por favor, digite a data no formato DD/MM/YYYY.")
	case ev.Text != "":
		date, err := period.ParseDate(ev.Text)
		if err != nil {
			p.send(ctx, sess.UserID, "⚠️ Data inválida. Use o formato DD/MM/YYYY. Tente novamente ou use /cancelar.")
			return
		}
		p.setRegisterDate(ctx, sess, date)
	default:
		sess.ResetToMenu()
		p.showMainMenu(ctx, sess.UserID)
	}
}

func (p *Processor) setRegisterDate(ctx context.Context, sess *session.Session, date time.Time) {
	sess.PendingDate = date
	sess.SavedCount = 0
	sess.State = session.StateAwaitRegEntry
	p.send(ctx, sess.UserID,
		"Data selecionada: "+date.Format(period.DateFormat)+".\n\n"+
			"✍️ Agora, por favor, insira o atendimento.\n"+msgEntryFormat)
}

func (p *Processor) handleAwaitRegEntry(ctx context.Context, sess *session.Session, ev Event) {
	if ev.Data == "reg_concluir" {
		p.finishRegistration(ctx, sess)
		return
	}
	if ev.Text == "" {
		p.send(ctx, sess.UserID, "✍️ Insira o próximo atendimento ou use /cancelar.")
		return
	}

	catalog, err := p.store.Catalog(ctx)
	if err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("Error reading procedure catalog")
		p.send(ctx, sess.UserID, msgStoreUnavailable)
		return
	}

	entry, err := records.ParseEntry(ev.Text, catalog)
	if err != nil {
		var unknown *records.UnknownProcedureError
		if errors.As(err, &unknown) {
			p.send(ctx, sess.UserID,
				"⚠️ Procedimento(s) não reconhecido(s): "+strings.Join(unknown.Codes, ", ")+".\n"+
					"Use a opção ℹ️ Ver Procedimentos no menu para consultar os códigos válidos.")
			return
		}
		p.send(ctx, sess.UserID, "⚠️ Formato inválido. Não consegui entender a sua mensagem.\n\n"+msgEntryFormat)
		return
	}

	timeOfDay := entry.Time
	if timeOfDay == "" {
		timeOfDay = p.now().Format("15:04")
	}

	rec := records.Record{
		Patient:    entry.Patient,
		Date:       sess.PendingDate,
		Time:       timeOfDay,
		Procedures: entry.Procedures,
		Price:      entry.Price,
	}

	// Either the append succeeds and we confirm it, or it fails and
	// the user is told nothing was saved. The state does not advance
	// on failure, so the line can simply be sent again.
	if err := p.store.Append(ctx, rec); err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("Error appending record")
		p.send(ctx, sess.UserID, "⚠️ O atendimento NÃO foi salvo na planilha. Tente enviar a mesma linha novamente.")
		return
	}
	sess.SavedCount++

	names := make([]string, len(entry.Procedures))
	for i, code := range entry.Procedures {
		names[i] = records.Describe(catalog, code)
	}

	confirmation := "✅ Atendimento Salvo!\n\n" +
		"Paciente: " + entry.Patient + "\n" +
		"Procedimentos: " + strings.Join(names, ", ") + "\n" +
		"Valor: " + formatCurrency(entry.Price)
	p.send(ctx, sess.UserID, confirmation)

	keyboard := [][]telegram.InlineKeyboardButton{
		{{Text: "✅ Concluir registro", CallbackData: "reg_concluir"}},
	}
	p.sendKeyboard(ctx, sess.UserID,
		"Deseja inserir outro atendimento para esta mesma data? Envie a próxima linha ou conclua.",
		keyboard)
}

func (p *Processor) finishRegistration(ctx context.Context, sess *session.Session) {
	date := sess.PendingDate
	saved := sess.SavedCount
	sess.ResetToMenu()

	if saved == 0 {
		p.send(ctx, sess.UserID, "Nenhum atendimento foi registrado.")
		p.showMainMenu(ctx, sess.UserID)
		return
	}

	p.send(ctx, sess.UserID, "✅ Concluído! Gerando resumo final para "+date.Format(period.DateFormat)+"...")
	// Re-fetch from the spreadsheet so the summary reflects what was
	// actually stored, not what this session believes it sent.
	if err := p.listDay(ctx, sess, date); err != nil {
		p.send(ctx, sess.UserID, msgStoreUnavailable)
	}
	p.showMainMenu(ctx, sess.UserID)
}
