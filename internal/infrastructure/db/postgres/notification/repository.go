package notification

import (
	"context"
	"time"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) notification.Repository {
	return &Repository{db: db}
}

func (r *Repository) fetch(ctx context.Context, query string, args ...any) (notification.Notifications, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ns Notifications
	for rows.Next() {
		n := new(Notification)
		if err = rows.Scan(
			&n.ID,
			&n.UserID,
			&n.InvoiceID,
			&n.Message,
			&n.Type,
			&n.IsRead,
			&n.SentDate,

			&n.UserName,
			&n.Username,
		); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ns), nil
}

func (r *Repository) FetchNotificationsByUser(ctx context.Context, userID user.ID) (notification.Notifications, error) {
	return r.fetch(ctx, SelectNotificationsByUser, int64(userID))
}

func (r *Repository) FetchNotifications(ctx context.Context) (notification.Notifications, error) {
	return r.fetch(ctx, SelectNotifications)
}

func (r *Repository) CreateNotification(ctx context.Context, req notification.Notification) (*notification.Notification, error) {
	out := req
	var id int64
	err := r.db.QueryRow(ctx, InsertNotification,
		int64(req.UserID),
		invoiceIDArg(req.InvoiceID),
		req.Message,
		string(req.Type),
		req.SentDate,
	).Scan(&id, &out.IsRead, &out.SentDate)
	if err != nil {
		return nil, err
	}
	out.ID = notification.ID(id)

	return &out, nil
}

func (r *Repository) ExistsForInvoice(
	ctx context.Context,
	userID user.ID,
	invoiceID invoice.ID,
	from, to time.Time,
) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, ExistsNotificationForInvoice,
		int64(userID), int64(invoiceID), from, to,
	).Scan(&exists)

	return exists, err
}

func (r *Repository) MarkRead(ctx context.Context, userID user.ID, id notification.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, MarkNotificationRead, int64(id), int64(userID))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID user.ID) (int64, error) {
	tag, err := r.db.Exec(ctx, MarkAllNotificationsRead, int64(userID))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteRead(ctx context.Context, userID user.ID) (int64, error) {
	tag, err := r.db.Exec(ctx, DeleteReadNotifications, int64(userID))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) CountNotifications(ctx context.Context, userID *user.ID) (int, int, error) {
	var total, unread int64
	if err := r.db.QueryRow(ctx, CountNotifications, userIDArg(userID)).Scan(&total, &unread); err != nil {
		return 0, 0, err
	}
	return int(total), int(unread), nil
}
