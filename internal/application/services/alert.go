package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/alert"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/metrics"
	"zentrix-api/internal/infrastructure/mq"
	dto "zentrix-api/internal/interface/api/rest/dto/notification"
)

const defaultAlertWriteLimit = 4

var ErrFetchInvoices = errors.New("failed to fetch invoices")

type AlertService struct {
	invoiceRepository      invoice.Repository
	notificationRepository notification.Repository
	publisher              ports.EventPublisher
	mCounter               *prometheus.CounterVec
	logger                 *zap.Logger

	policy alert.Policy
	loc    *time.Location
	limit  int
}

func NewAlertService(
	invoiceRepository invoice.Repository,
	notificationRepository notification.Repository,
	publisher ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	policy alert.Policy,
	loc *time.Location,
	limit int,
) ports.AlertService {
	if loc == nil {
		loc = time.UTC
	}
	if limit <= 0 {
		limit = defaultAlertWriteLimit
	}

	return &AlertService{
		invoiceRepository:      invoiceRepository,
		notificationRepository: notificationRepository,
		publisher:              publisher,
		mCounter:               mCounter,
		logger:                 logger,
		policy:                 policy,
		loc:                    loc,
		limit:                  limit,
	}
}

// Generate buckets the user's invoices and records one notification per
// surfaced invoice and day. Write failures are logged and counted; the
// computed alerts are returned either way.
func (as *AlertService) Generate(ctx context.Context, userID user.ID, now time.Time) (alert.Alerts, error) {
	invs, err := as.invoiceRepository.FetchInvoicesByUser(ctx, userID)
	if err != nil {
		return alert.Alerts{}, fmt.Errorf("%w of user %d: %v", ErrFetchInvoices, userID, err)
	}

	today := alert.Midnight(now, as.loc)
	out := alert.Build(as.policy, invs, today)

	var g errgroup.Group
	g.SetLimit(as.limit)
	for _, a := range out.All() {
		g.Go(func() error {
			if err := as.record(ctx, userID, a, today, now); err != nil {
				as.mCounter.WithLabelValues(metrics.NotificationWriteFailed).Inc()
				as.logger.Error("failed to record invoice alert",
					zap.Int64("user_id", int64(userID)),
					zap.Int64("invoice_id", int64(a.InvoiceID)),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}

func (as *AlertService) record(ctx context.Context, userID user.ID, a alert.Alert, today, now time.Time) error {
	exists, err := as.notificationRepository.ExistsForInvoice(ctx, userID, a.InvoiceID, today, today.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("check existing notification: %w", err)
	}
	if exists {
		return nil
	}

	invoiceID := a.InvoiceID
	n, err := as.notificationRepository.CreateNotification(ctx, notification.Notification{
		UserID:    userID,
		InvoiceID: &invoiceID,
		Message:   a.Message,
		Type:      a.Type,
		SentDate:  now,
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	as.publisher.Publish(mq.NewEvent(
		mq.ActionNotificationCreated,
		strconv.FormatInt(int64(userID), 10),
		dto.ToResponseNotification(*n),
	))
	as.mCounter.WithLabelValues(metrics.NotificationCreated).Inc()

	return nil
}
