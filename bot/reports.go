package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/records"
	"github.com/studiobeleza/atendbot-go/report"
	"github.com/studiobeleza/atendbot-go/session"
	"github.com/studiobeleza/atendbot-go/telegram"
)

func (p *Processor) startReports(ctx context.Context, sess *session.Session, ev Event) {
	sess.State = session.StateReportsMenu
	p.showReportsMenu(ctx, ev)
}

func (p *Processor) showReportsMenu(ctx context.Context, ev Event) {
	keyboard := [][]telegram.InlineKeyboardButton{
		{{Text: "💰 Faturamento", CallbackData: "analytics_faturamento"}},
		{{Text: "📅 Atendimentos", CallbackData: "analytics_atendimentos"}},
		{{Text: "⭐ Procedimentos", CallbackData: "analytics_procedimentos"}},
		{{Text: "👤 Pacientes", CallbackData: "analytics_pacientes"}},
		{{Text: "📤 Exportar CSV", CallbackData: "analytics_exportar"}},
		{{Text: "🔙 Voltar ao Menu", CallbackData: "menu_back"}},
	}
	p.replyKeyboard(ctx, ev, "📈 Menu de Análises\n\nEscolha qual relatório você deseja ver:", keyboard)
}

func (p *Processor) handleReportsMenu(ctx context.Context, sess *session.Session, ev Event) {
	switch ev.Data {
	case "analytics_faturamento", "analytics_atendimentos", "analytics_procedimentos",
		"analytics_pacientes", "analytics_exportar":
	default:
		sess.ResetToMenu()
		p.showMainMenu(ctx, sess.UserID)
		return
	}

	recs, err := p.store.Query(ctx, period.AllTime())
	if err != nil {
		log.Error().Err(err).Str("user_id", sess.UserID).Msg("Error querying records for report")
		p.send(ctx, sess.UserID, msgStoreUnavailable)
		return
	}
	if len(recs) == 0 {
		p.send(ctx, sess.UserID, "ℹ️ Não há dados suficientes para gerar análises.")
		p.showReportsMenu(ctx, Event{UserID: sess.UserID})
		return
	}

	result := report.Aggregate(recs, period.AllTime())

	switch ev.Data {
	case "analytics_faturamento":
		p.send(ctx, sess.UserID, renderRevenueReport(result))
	case "analytics_atendimentos":
		p.send(ctx, sess.UserID, renderAppointmentsReport(result))
	case "analytics_procedimentos":
		p.sendProceduresReport(ctx, sess.UserID, result)
	case "analytics_pacientes":
		p.send(ctx, sess.UserID, renderPatientsReport(result))
	case "analytics_exportar":
		p.exportRecords(ctx, sess.UserID, recs)
	}

	// The report itself was sent as a new message, so the menu follows
	// it fresh instead of editing the one that is now above the report.
	p.showReportsMenu(ctx, Event{UserID: sess.UserID})
}

func renderRevenueReport(result report.Result) string {
	lines := []string{"💰 Faturamento Mensal", ""}
	for _, bucket := range result.ByMonth {
		lines = append(lines, monthLabel(bucket.Year, bucket.Month)+": "+formatCurrency(bucket.Total))
	}
	lines = append(lines, "", "Total Geral: "+formatCurrency(result.Total))
	return strings.Join(lines, "\n")
}

func renderAppointmentsReport(result report.Result) string {
	lines := []string{"📅 Atendimentos por Mês", ""}
	for _, bucket := range result.ByMonth {
		lines = append(lines, monthLabel(bucket.Year, bucket.Month)+": "+countLabel(bucket.Count))
	}
	lines = append(lines, "", fmt.Sprintf("Total Geral: %s", countLabel(result.Count)))
	return strings.Join(lines, "\n")
}

func (p *Processor) sendProceduresReport(ctx context.Context, userID string, result report.Result) {
	catalog, err := p.store.Catalog(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Error reading catalog for report, using raw codes")
		catalog = nil
	}

	lines := []string{"⭐ Procedimentos Mais Populares", ""}
	for _, row := range result.Procedures {
		lines = append(lines, fmt.Sprintf("%s: %d", records.Describe(catalog, row.Code), row.Count))
	}
	p.send(ctx, userID, strings.Join(lines, "\n"))
}

func renderPatientsReport(result report.Result) string {
	lines := []string{"👤 Ranking de Pacientes", ""}
	for _, row := range result.Patients {
		lines = append(lines, fmt.Sprintf("%s: %s", row.Patient, countLabel(row.Count)))
	}
	return strings.Join(lines, "\n")
}

func (p *Processor) exportRecords(ctx context.Context, userID string, recs []records.Record) {
	if p.exporter == nil {
		p.send(ctx, userID, "⚠️ Exportação não está configurada.")
		return
	}
	url, err := p.exporter.ExportCSV(ctx, recs)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Error exporting records")
		p.send(ctx, userID, "⚠️ Não foi possível gerar a exportação. Tente novamente.")
		return
	}
	p.send(ctx, userID, "📤 Exportação pronta! Baixe em:\n"+url)
}
