package export

import (
	"time"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

type column struct {
	title string
	// grid width in the PDF (12 per row)
	size int
}

func invoiceColumns(withUser bool) []column {
	if withUser {
		return []column{
			{"Número", 2}, {"Usuario", 3}, {"Monto", 2}, {"Estado", 1}, {"Emisión", 2}, {"Vencimiento", 2},
		}
	}
	return []column{
		{"Número", 3}, {"Monto", 3}, {"Estado", 2}, {"Emisión", 2}, {"Vencimiento", 2},
	}
}

func notificationColumns(withUser bool) []column {
	if withUser {
		return []column{
			{"Mensaje", 5}, {"Usuario", 2}, {"Tipo", 1}, {"Leída", 1}, {"Fecha", 3},
		}
	}
	return []column{
		{"Mensaje", 7}, {"Tipo", 1}, {"Leída", 1}, {"Fecha", 3},
	}
}

func invoiceValues(inv *invoice.Invoice, withUser bool) []string {
	vals := []string{inv.Number}
	if withUser {
		vals = append(vals, userLabel(inv.UserName, inv.Username))
	}
	return append(vals,
		invoice.FormatAmount(inv.TotalAmount),
		string(inv.Status),
		inv.IssueDate.Format(dateLayout),
		inv.DueDate.Format(dateLayout),
	)
}

func notificationValues(n *notification.Notification, withUser bool) []string {
	vals := []string{n.Message}
	if withUser {
		vals = append(vals, userLabel(n.UserName, n.Username))
	}
	return append(vals, string(n.Type), yesNo(n.IsRead), n.SentDate.Format(dateTimeLayout))
}

func userLabel(name, username string) string {
	if name != "" {
		return name
	}
	return username
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func generatedAt(now time.Time) string {
	return "Generado: " + now.Format(dateTimeLayout)
}
