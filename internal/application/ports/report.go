package ports

import (
	"context"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/report"
)

type ReportRenderer interface {
	Format() report.Format
	RenderInvoices(title string, invs invoice.Invoices, withUser bool) ([]byte, error)
	RenderNotifications(title string, ns notification.Notifications, withUser bool) ([]byte, error)
}

type ReportService interface {
	ExportInvoices(ctx context.Context, format report.Format, invs invoice.Invoices, withUser bool) (*report.File, error)
	ExportNotifications(ctx context.Context, format report.Format, ns notification.Notifications, withUser bool) (*report.File, error)
	// Archive uploads f and returns a presigned download URL.
	Archive(ctx context.Context, owner string, f *report.File) (string, error)
}

type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string) (string, error)
	GetBucket() string
}
