package notification

import (
	"time"

	"zentrix-api/internal/domain/notification"
)

type (
	Notification struct {
		ID        int64     `json:"id_notification"`
		UserID    int64     `json:"id_user"`
		InvoiceID *int64    `json:"id_invoice"`
		Message   string    `json:"message"`
		Type      string    `json:"type"`
		IsRead    bool      `json:"is_read"`
		SentDate  time.Time `json:"sent_date"`
		UserName  string    `json:"user_name,omitempty"`
	}
	Notifications []Notification
	ResponseData  struct {
		Data Notifications `json:"data"`
	}
	// AffectedResponse answers bulk updates.
	AffectedResponse struct {
		Message  string `json:"message"`
		Affected int64  `json:"affected"`
	}
)

func ToResponseNotification(d notification.Notification) Notification {
	n := Notification{
		ID:       int64(d.ID),
		UserID:   int64(d.UserID),
		Message:  d.Message,
		Type:     string(d.Type),
		IsRead:   d.IsRead,
		SentDate: d.SentDate,
		UserName: d.UserName,
	}
	if d.InvoiceID != nil {
		id := int64(*d.InvoiceID)
		n.InvoiceID = &id
	}

	return n
}

func ToResponseNotifications(ds notification.Notifications) Notifications {
	out := make(Notifications, len(ds))
	for idx, d := range ds {
		out[idx] = ToResponseNotification(*d)
	}

	return out
}
