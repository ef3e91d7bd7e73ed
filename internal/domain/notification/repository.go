package notification

import (
	"context"
	"time"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/user"
)

type Repository interface {
	FetchNotificationsByUser(ctx context.Context, userID user.ID) (Notifications, error)
	FetchNotifications(ctx context.Context) (Notifications, error)
	CreateNotification(ctx context.Context, req Notification) (*Notification, error)
	// ExistsForInvoice reports a notification for (user, invoice) sent in [from, to).
	ExistsForInvoice(ctx context.Context, userID user.ID, invoiceID invoice.ID, from, to time.Time) (bool, error)
	MarkRead(ctx context.Context, userID user.ID, id ID) (bool, error)
	MarkAllRead(ctx context.Context, userID user.ID) (int64, error)
	DeleteRead(ctx context.Context, userID user.ID) (int64, error)
	// CountNotifications counts every notification when userID is nil.
	CountNotifications(ctx context.Context, userID *user.ID) (total int, unread int, err error)
}
