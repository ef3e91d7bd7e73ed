package ports

import (
	"context"
	"time"

	"zentrix-api/internal/domain/alert"
	"zentrix-api/internal/domain/dashboard"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
)

type InvoiceService interface {
	FindUserInvoices(ctx context.Context, userID user.ID, f invoice.Filter) (invoice.Invoices, error)
	FindInvoices(ctx context.Context, f invoice.Filter) (invoice.Invoices, error)
}

type NotificationService interface {
	FindUserNotifications(ctx context.Context, userID user.ID, f notification.Filter) (notification.Notifications, error)
	FindNotifications(ctx context.Context, f notification.Filter) (notification.Notifications, error)
	MarkRead(ctx context.Context, userID user.ID, id notification.ID) error
	MarkAllRead(ctx context.Context, userID user.ID) (int64, error)
	DeleteRead(ctx context.Context, userID user.ID) (int64, error)
}

type AlertService interface {
	Generate(ctx context.Context, userID user.ID, now time.Time) (alert.Alerts, error)
}

type DashboardService interface {
	Summary(ctx context.Context, role user.Role, callerID user.ID) (*dashboard.Summary, error)
}
