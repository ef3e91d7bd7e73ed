package dashboard

import (
	"zentrix-api/internal/domain/dashboard"
)

type Summary struct {
	Role                string         `json:"rol"`
	TotalUsers          *int           `json:"total_users,omitempty"`
	TotalInvoices       int            `json:"total_invoices"`
	InvoicesByStatus    map[string]int `json:"invoices_by_status"`
	TotalNotifications  int            `json:"total_notifications"`
	UnreadNotifications int            `json:"unread_notifications"`
}

func ToResponseSummary(s dashboard.Summary) Summary {
	byStatus := make(map[string]int, len(s.InvoicesByStatus))
	for st, n := range s.InvoicesByStatus {
		byStatus[string(st)] = n
	}

	return Summary{
		Role:                s.Role.String(),
		TotalUsers:          s.TotalUsers,
		TotalInvoices:       s.TotalInvoices,
		InvoicesByStatus:    byStatus,
		TotalNotifications:  s.TotalNotifications,
		UnreadNotifications: s.UnreadNotifications,
	}
}
