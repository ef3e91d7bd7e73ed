package notification

import "time"

type (
	Notification struct {
		ID        int64
		UserID    int64
		InvoiceID *int64
		Message   string
		Type      string
		IsRead    bool
		SentDate  time.Time
		UserName  string
		Username  string
	}
	Notifications []*Notification
)
