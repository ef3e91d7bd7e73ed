package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders whole pesos with dot thousands separators: $1.500.000.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.Round(0).Abs().StringFixed(0)
	sign := ""
	if amount.Round(0).IsNegative() {
		sign = "-"
	}

	n := len(s)
	if n <= 3 {
		return sign + "$" + s
	}
	var b strings.Builder
	b.Grow(n + n/3 + 2)
	b.WriteString(sign)
	b.WriteByte('$')
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(c)
	}
	return b.String()
}
