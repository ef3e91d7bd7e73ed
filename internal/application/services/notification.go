package services

import (
	"context"
	"errors"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	notificationRepository notification.Repository
}

func NewNotificationService(notificationRepository notification.Repository) ports.NotificationService {
	return &NotificationService{notificationRepository: notificationRepository}
}

func (ns *NotificationService) FindUserNotifications(
	ctx context.Context,
	userID user.ID,
	f notification.Filter,
) (notification.Notifications, error) {
	out, err := ns.notificationRepository.FetchNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return f.Apply(out), nil
}

func (ns *NotificationService) FindNotifications(ctx context.Context, f notification.Filter) (notification.Notifications, error) {
	out, err := ns.notificationRepository.FetchNotifications(ctx)
	if err != nil {
		return nil, err
	}

	return f.Apply(out), nil
}

// MarkRead only touches notifications owned by userID.
func (ns *NotificationService) MarkRead(ctx context.Context, userID user.ID, id notification.ID) error {
	ok, err := ns.notificationRepository.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (ns *NotificationService) MarkAllRead(ctx context.Context, userID user.ID) (int64, error) {
	return ns.notificationRepository.MarkAllRead(ctx, userID)
}

func (ns *NotificationService) DeleteRead(ctx context.Context, userID user.ID) (int64, error) {
	return ns.notificationRepository.DeleteRead(ctx, userID)
}
