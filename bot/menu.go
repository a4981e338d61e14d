package bot

import (
	"context"

	"github.com/studiobeleza/atendbot-go/session"
	"github.com/studiobeleza/atendbot-go/telegram"
)

const mainMenuText = "Menu Principal. O que você gostaria de fazer?"

func mainMenuKeyboard() [][]telegram.InlineKeyboardButton {
	return [][]telegram.InlineKeyboardButton{
		{{Text: "🚀 Registrar Novo Atendimento", CallbackData: "menu_registrar"}},
		{{Text: "📊 Calcular Faturamento", CallbackData: "menu_calcular"}},
		{{Text: "📋 Listar Atendimentos de um Dia", CallbackData: "menu_listar"}},
		{{Text: "📈 Ver Análises", CallbackData: "menu_analytics"}},
		{{Text: "ℹ️ Ver Procedimentos", CallbackData: "menu_procedimentos"}},
	}
}

func (p *Processor) showMainMenu(ctx context.Context, userID string) {
	p.sendKeyboard(ctx, userID, mainMenuText, mainMenuKeyboard())
}

func (p *Processor) handleMainMenu(ctx context.Context, sess *session.Session, ev Event) {
	switch ev.Data {
	case "menu_registrar":
		p.startRegister(ctx, sess, ev)
	case "menu_calcular":
		p.startCalculate(ctx, sess, ev)
	case "menu_listar":
		p.startList(ctx, sess, ev)
	case "menu_analytics":
		p.startReports(ctx, sess, ev)
	case "menu_procedimentos":
		p.showProcedures(ctx, sess.UserID)
	default:
		// Anything unexpected at the menu is a soft reset, not an error.
		sess.ResetToMenu()
		p.showMainMenu(ctx, sess.UserID)
	}
}

func (p *Processor) showProcedures(ctx context.Context, userID string) {
	catalog, err := p.store.Catalog(ctx)
	if err != nil {
		p.send(ctx, userID, msgStoreUnavailable)
		return
	}

	message := "📋 Procedimentos Disponíveis:\n\n"
	for _, entry := range catalog {
		message += "• " + entry.Code + ": " + entry.Description + "\n"
	}
	p.send(ctx, userID, message)
	p.showMainMenu(ctx, userID)
}
