package alert

import (
	"github.com/shopspring/decimal"

	"zentrix-api/internal/domain/alert"
	"zentrix-api/internal/interface/api/rest/dto/invoice"
)

type (
	Alert struct {
		InvoiceID    int64           `json:"id_invoice"`
		Number       string          `json:"numero"`
		TotalAmount  decimal.Decimal `json:"total_amount"`
		Status       string          `json:"status"`
		DueDate      string          `json:"due_date"`
		DaysUntilDue int             `json:"days_until_due"`
		Tier         string          `json:"tier"`
		Type         string          `json:"type"`
		Message      string          `json:"message"`
	}
	Response struct {
		Urgent []Alert `json:"urgent"`
		Normal []Alert `json:"normal"`
	}
)

func ToResponseAlert(a alert.Alert) Alert {
	return Alert{
		InvoiceID:    int64(a.InvoiceID),
		Number:       a.InvoiceNumber,
		TotalAmount:  a.TotalAmount,
		Status:       string(a.Status),
		DueDate:      a.DueDate.Format(invoice.DateLayout),
		DaysUntilDue: a.DaysUntilDue,
		Tier:         string(a.Tier),
		Type:         string(a.Type),
		Message:      a.Message,
	}
}

func ToResponse(as alert.Alerts) Response {
	r := Response{
		Urgent: make([]Alert, 0, len(as.Urgent)),
		Normal: make([]Alert, 0, len(as.Normal)),
	}
	for _, a := range as.Urgent {
		r.Urgent = append(r.Urgent, ToResponseAlert(a))
	}
	for _, a := range as.Normal {
		r.Normal = append(r.Normal, ToResponseAlert(a))
	}

	return r
}
