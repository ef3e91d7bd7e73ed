package invoice

import (
	"context"

	"github.com/jackc/pgx/v5"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) invoice.Repository {
	return &Repository{db: db}
}

func (r *Repository) fetch(ctx context.Context, query string, args ...any) (invoice.Invoices, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs Invoices
	for rows.Next() {
		i := new(Invoice)
		if err = rows.Scan(
			&i.ID,
			&i.Number,
			&i.UserID,
			&i.ErpCompanyID,
			&i.TotalAmount,
			&i.Status,
			&i.IssueDate,
			&i.DueDate,
			&i.CreatedAt,

			&i.UserName,
			&i.Username,
		); err != nil {
			return nil, err
		}
		invs = append(invs, i)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(invs), nil
}

func (r *Repository) FetchInvoicesByUser(ctx context.Context, userID user.ID) (invoice.Invoices, error) {
	return r.fetch(ctx, SelectInvoicesByUser, int64(userID))
}

func (r *Repository) FetchInvoices(ctx context.Context) (invoice.Invoices, error) {
	return r.fetch(ctx, SelectInvoices)
}

func (r *Repository) CreateInvoice(ctx context.Context, req invoice.Invoice) (*invoice.Invoice, error) {
	out := req
	var id int64
	err := r.db.QueryRow(ctx, InsertInvoice,
		req.Number,
		int64(req.UserID),
		req.ErpCompanyID,
		req.TotalAmount,
		string(req.Status),
		req.IssueDate,
		req.DueDate,
	).Scan(&id, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	out.ID = invoice.ID(id)

	return &out, nil
}

func (r *Repository) CountByStatus(ctx context.Context, userID *user.ID) (map[invoice.Status]int, error) {
	rows, err := r.db.Query(ctx, CountInvoicesByStatus, nullableID(userID))
	if err != nil {
		return nil, err
	}

	counts := make(map[invoice.Status]int, len(invoice.Statuses))
	var (
		status string
		n      int64
	)
	_, err = pgx.ForEachRow(rows, []any{&status, &n}, func() error {
		counts[invoice.Status(status)] = int(n)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return counts, nil
}

func nullableID(id *user.ID) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}
