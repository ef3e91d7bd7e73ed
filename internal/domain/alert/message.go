package alert

import (
	"fmt"

	"github.com/shopspring/decimal"

	"zentrix-api/internal/domain/invoice"
)

func Message(number string, amount decimal.Decimal, days int) string {
	prefix := fmt.Sprintf("La factura %s por %s", number, invoice.FormatAmount(amount))

	switch {
	case days < 0:
		return fmt.Sprintf("%s está vencida hace %s", prefix, dayCount(-days))
	case days == 0:
		return prefix + " vence hoy"
	case days == 1:
		return prefix + " vence mañana"
	default:
		return fmt.Sprintf("%s vence en %s", prefix, dayCount(days))
	}
}

func dayCount(n int) string {
	if n == 1 {
		return "1 día"
	}
	return fmt.Sprintf("%d días", n)
}
