package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	msgStoreUnavailable = "⚠️ A planilha está temporariamente indisponível. Tente novamente."
	msgEntryFormat      = "Use o formato: <Nome do Paciente> <Procedimentos> <Valor>\n" +
		"Exemplo: Maria Silva RF,LP 150,50"
)

// formatCurrency renders a decimal as Brazilian Real with a comma
// decimal separator.
func formatCurrency(value decimal.Decimal) string {
	return "R$ " + strings.ReplaceAll(value.StringFixed(2), ".", ",")
}

func monthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%02d/%04d", int(month), year)
}

func countLabel(n int) string {
	if n == 1 {
		return "1 atendimento"
	}
	return fmt.Sprintf("%d atendimentos", n)
}
