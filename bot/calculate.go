package bot

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/report"
	"github.com/studiobeleza/atendbot-go/session"
	"github.com/studiobeleza/atendbot-go/telegram"
)

var calcPrompts = map[string]string{
	"dia":       "📅 Digite o dia (DD/MM/YYYY):",
	"semana":    "📅 Digite uma data (DD/MM/YYYY) de referência para a semana:",
	"mes":       "📅 Digite o mês (MM/YYYY) de referência:",
	"relatorio": "📅 Digite o mês (MM/YYYY) de referência para o relatório:",
	"periodo":   "📅 Digite a data de início e fim (DD/MM/YYYY DD/MM/YYYY):",
}

func (p *Processor) startCalculate(ctx context.Context, sess *session.Session, ev Event) {
	sess.State = session.StateAwaitCalcMode
	keyboard := [][]telegram.InlineKeyboardButton{
		{{Text: "Hoje", CallbackData: "calc_dia_hoje"}, {Text: "Esta Semana", CallbackData: "calc_semana_atual"}},
		{{Text: "Este Mês", CallbackData: "calc_mes_atual"}},
		{{Text: "Outro Dia", CallbackData: "calc_dia"}, {Text: "Outra Semana", CallbackData: "calc_semana"}},
		{{Text: "Outro Mês", CallbackData: "calc_mes"}},
		{{Text: "Relatório Mensal", CallbackData: "calc_relatorio"}},
		{{Text: "Período Específico", CallbackData: "calc_periodo"}},
		{{Text: "🔙 Voltar ao Menu", CallbackData: "menu_back"}},
	}
	p.replyKeyboard(ctx, ev, "📊 Escolha o período para o cálculo do faturamento:", keyboard)
}

// showMonthlyReportChoice offers the monthly report sub-choice: the
// billing cycle anchored on the current month, or on a typed one.
func (p *Processor) showMonthlyReportChoice(ctx context.Context, sess *session.Session, ev Event) {
	currentMonth := p.now().Format(period.MonthFormat)
	keyboard := [][]telegram.InlineKeyboardButton{
		{{Text: "Este Mês [" + currentMonth + "]", CallbackData: "calc_relatorio_atual"}},
		{{Text: "Outro Mês", CallbackData: "calc_relatorio_outro"}},
		{{Text: "🔙 Voltar", CallbackData: "calc_voltar"}},
	}
	p.replyKeyboard(ctx, ev, "📄 Relatório Mensal (dia 07 ao dia 06 do mês seguinte):", keyboard)
}

func (p *Processor) handleAwaitCalcMode(ctx context.Context, sess *session.Session, ev Event) {
	switch ev.Data {
	case "calc_dia_hoje":
		p.runCalculation(ctx, sess, "dia", nil)
	case "calc_semana_atual":
		p.runCalculation(ctx, sess, "semana", nil)
	case "calc_mes_atual":
		p.runCalculation(ctx, sess, "mes", nil)
	case "calc_relatorio":
		p.showMonthlyReportChoice(ctx, sess, ev)
	case "calc_relatorio_atual":
		p.runCalculation(ctx, sess, "relatorio", nil)
	case "calc_relatorio_outro":
		sess.CalcMode = "relatorio"
		sess.State = session.StateAwaitCalcArgs
		p.send(ctx, sess.UserID, calcPrompts["relatorio"])
	case "calc_voltar":
		p.startCalculate(ctx, sess, ev)
	case "calc_dia", "calc_semana", "calc_mes", "calc_periodo":
		mode := strings.TrimPrefix(ev.Data, "calc_")
		sess.CalcMode = mode
		sess.State = session.StateAwaitCalcArgs
		p.send(ctx, sess.UserID, calcPrompts[mode])
	default:
		sess.ResetToMenu()
		p.showMainMenu(ctx, sess.UserID)
	}
}

func (p *Processor) handleAwaitCalcArgs(ctx context.Context, sess *session.Session, ev Event) {
	if ev.Text == "" {
		sess.ResetToMenu()
		p.showMainMenu(ctx, sess.UserID)
		return
	}
	p.runCalculation(ctx, sess, sess.CalcMode, strings.Fields(ev.Text))
}

// runCalculation resolves the period, aggregates the matching records
// and renders the summary. Invalid dates re-enter the current state;
// store failures keep it too, so the user can retry.
func (p *Processor) runCalculation(ctx context.Context, sess *session.Session, mode string, args []string) {
	dateRange, err := period.Resolve(mode, args, p.now())
	if err != nil {
		p.send(ctx, sess.UserID, "⚠️ Data em formato inválido. Tente novamente ou use /cancelar.")
		return
	}

	recs, err := p.store.Query(ctx, dateRange)
	if err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("Error querying records")
		p.send(ctx, sess.UserID, msgStoreUnavailable)
		return
	}

	label := period.Label(mode, dateRange)
	result := report.Aggregate(recs, dateRange)

	if result.Count == 0 {
		p.send(ctx, sess.UserID, "ℹ️ Nenhum atendimento encontrado para "+label+".")
	} else {
		lines := make([]string, 0, len(result.ByDay)+2)
		lines = append(lines, "Resumo diário:")
		for _, day := range result.ByDay {
			lines = append(lines, day.Date.Format(period.DateFormat)+
				" ("+countLabel(day.Count)+"): "+formatCurrency(day.Total))
		}
		if mode != "dia" {
			lines = append(lines, "",
				"📊 Total de "+countLabel(result.Count)+" para "+label+": "+formatCurrency(result.Total))
		}
		p.send(ctx, sess.UserID, strings.Join(lines, "\n"))
	}

	sess.ResetToMenu()
	p.showMainMenu(ctx, sess.UserID)
}
