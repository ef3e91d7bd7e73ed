package services

import (
	"context"
	"sync"
	"time"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/mq"
)

type fakeUserRepo struct {
	FetchUserByIDFunc         func(ctx context.Context, id user.ID) (*user.User, error)
	FetchActiveByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	FetchUsersFunc            func(ctx context.Context) (user.Users, error)
	CreatePersonFunc          func(ctx context.Context, req user.User) (int64, error)
	CreateAccountFunc         func(ctx context.Context, personID int64, req user.User) (user.ID, error)
	DeletePersonFunc          func(ctx context.Context, personID int64) error
	UpdateUserFunc            func(ctx context.Context, req user.User) (*user.User, error)
	UpdateStateFunc           func(ctx context.Context, id user.ID, state user.State) (*user.User, error)
	UpdatePasswordFunc        func(ctx context.Context, id user.ID, passwordHash string) error
	CountUsersFunc            func(ctx context.Context) (int, error)
}

func (f *fakeUserRepo) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return f.FetchUserByIDFunc(ctx, id)
}

func (f *fakeUserRepo) FetchActiveByUsername(ctx context.Context, username string) (*user.User, error) {
	return f.FetchActiveByUsernameFunc(ctx, username)
}

func (f *fakeUserRepo) FetchUsers(ctx context.Context) (user.Users, error) {
	return f.FetchUsersFunc(ctx)
}

func (f *fakeUserRepo) CreatePerson(ctx context.Context, req user.User) (int64, error) {
	return f.CreatePersonFunc(ctx, req)
}

func (f *fakeUserRepo) CreateAccount(ctx context.Context, personID int64, req user.User) (user.ID, error) {
	return f.CreateAccountFunc(ctx, personID, req)
}

func (f *fakeUserRepo) DeletePerson(ctx context.Context, personID int64) error {
	return f.DeletePersonFunc(ctx, personID)
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	return f.UpdateUserFunc(ctx, req)
}

func (f *fakeUserRepo) UpdateState(ctx context.Context, id user.ID, state user.State) (*user.User, error) {
	return f.UpdateStateFunc(ctx, id, state)
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id user.ID, passwordHash string) error {
	return f.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (f *fakeUserRepo) CountUsers(ctx context.Context) (int, error) {
	return f.CountUsersFunc(ctx)
}

type fakeInvoiceRepo struct {
	FetchInvoicesByUserFunc func(ctx context.Context, userID user.ID) (invoice.Invoices, error)
	FetchInvoicesFunc       func(ctx context.Context) (invoice.Invoices, error)
	CreateInvoiceFunc       func(ctx context.Context, req invoice.Invoice) (*invoice.Invoice, error)
	CountByStatusFunc       func(ctx context.Context, userID *user.ID) (map[invoice.Status]int, error)
}

func (f *fakeInvoiceRepo) FetchInvoicesByUser(ctx context.Context, userID user.ID) (invoice.Invoices, error) {
	return f.FetchInvoicesByUserFunc(ctx, userID)
}

func (f *fakeInvoiceRepo) FetchInvoices(ctx context.Context) (invoice.Invoices, error) {
	return f.FetchInvoicesFunc(ctx)
}

func (f *fakeInvoiceRepo) CreateInvoice(ctx context.Context, req invoice.Invoice) (*invoice.Invoice, error) {
	return f.CreateInvoiceFunc(ctx, req)
}

func (f *fakeInvoiceRepo) CountByStatus(ctx context.Context, userID *user.ID) (map[invoice.Status]int, error) {
	return f.CountByStatusFunc(ctx, userID)
}

// memNotificationRepo stores rows in memory; CreateFunc, when set, replaces the insert.
type memNotificationRepo struct {
	mu     sync.Mutex
	rows   notification.Notifications
	nextID notification.ID

	CreateFunc func(ctx context.Context, req notification.Notification) (*notification.Notification, error)
	CountFunc  func(ctx context.Context, userID *user.ID) (int, int, error)
}

func (m *memNotificationRepo) FetchNotificationsByUser(_ context.Context, userID user.ID) (notification.Notifications, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out notification.Notifications
	for _, n := range m.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotificationRepo) FetchNotifications(_ context.Context) (notification.Notifications, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append(notification.Notifications(nil), m.rows...), nil
}

func (m *memNotificationRepo) CreateNotification(ctx context.Context, req notification.Notification) (*notification.Notification, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	req.ID = m.nextID
	req.IsRead = false
	m.rows = append(m.rows, &req)
	return &req, nil
}

func (m *memNotificationRepo) ExistsForInvoice(
	_ context.Context,
	userID user.ID,
	invoiceID invoice.ID,
	from, to time.Time,
) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.rows {
		if n.UserID != userID || n.InvoiceID == nil || *n.InvoiceID != invoiceID {
			continue
		}
		if !n.SentDate.Before(from) && n.SentDate.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memNotificationRepo) MarkRead(_ context.Context, userID user.ID, id notification.ID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.rows {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memNotificationRepo) MarkAllRead(_ context.Context, userID user.ID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, row := range m.rows {
		if row.UserID == userID && !row.IsRead {
			row.IsRead = true
			n++
		}
	}
	return n, nil
}

func (m *memNotificationRepo) DeleteRead(_ context.Context, userID user.ID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.rows[:0]
	var n int64
	for _, row := range m.rows {
		if row.UserID == userID && row.IsRead {
			n++
			continue
		}
		kept = append(kept, row)
	}
	m.rows = kept
	return n, nil
}

func (m *memNotificationRepo) CountNotifications(ctx context.Context, userID *user.ID) (int, int, error) {
	return m.CountFunc(ctx, userID)
}

func (m *memNotificationRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.rows)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []mq.Event
}

func (p *recordingPublisher) Publish(e mq.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, e)
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Action)
	}
	return out
}
