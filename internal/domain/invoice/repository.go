package invoice

import (
	"context"

	"zentrix-api/internal/domain/user"
)

type Repository interface {
	FetchInvoicesByUser(ctx context.Context, userID user.ID) (Invoices, error)
	FetchInvoices(ctx context.Context) (Invoices, error)
	CreateInvoice(ctx context.Context, req Invoice) (*Invoice, error)
	// CountByStatus counts every invoice when userID is nil.
	CountByStatus(ctx context.Context, userID *user.ID) (map[Status]int, error)
}
