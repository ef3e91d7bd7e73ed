package dashboard

import (
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/user"
)

// Summary holds the dashboard counters; TotalUsers is only set for admins.
type Summary struct {
	Role                user.Role
	TotalUsers          *int
	TotalInvoices       int
	InvoicesByStatus    map[invoice.Status]int
	TotalNotifications  int
	UnreadNotifications int
}
