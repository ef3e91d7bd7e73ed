package services

import (
	"context"
	"fmt"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/dashboard"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
)

type DashboardService struct {
	userRepository         user.Repository
	invoiceRepository      invoice.Repository
	notificationRepository notification.Repository
}

func NewDashboardService(
	userRepository user.Repository,
	invoiceRepository invoice.Repository,
	notificationRepository notification.Repository,
) ports.DashboardService {
	return &DashboardService{
		userRepository:         userRepository,
		invoiceRepository:      invoiceRepository,
		notificationRepository: notificationRepository,
	}
}

// Summary counts everything for admins and only the caller's rows otherwise.
func (ds *DashboardService) Summary(ctx context.Context, role user.Role, callerID user.ID) (*dashboard.Summary, error) {
	s := &dashboard.Summary{Role: role}

	var scope *user.ID
	switch role {
	case user.RoleAdmin:
		n, err := ds.userRepository.CountUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("count users: %w", err)
		}
		s.TotalUsers = &n
	case user.RoleUser:
		scope = &callerID
	default:
		return nil, user.ErrUnknownRole
	}

	byStatus, err := ds.invoiceRepository.CountByStatus(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("count invoices: %w", err)
	}
	s.InvoicesByStatus = make(map[invoice.Status]int, len(invoice.Statuses))
	for _, st := range invoice.Statuses {
		s.InvoicesByStatus[st] = byStatus[st]
		s.TotalInvoices += byStatus[st]
	}

	s.TotalNotifications, s.UnreadNotifications, err = ds.notificationRepository.CountNotifications(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	return s, nil
}
