package notification

import (
	"time"

	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/user"
)

type (
	ID   int64
	Type string

	Notification struct {
		ID        ID
		UserID    user.ID
		InvoiceID *invoice.ID
		Message   string
		Type      Type
		IsRead    bool
		SentDate  time.Time

		// read model, filled by joined queries
		UserName string
		Username string
	}
	Notifications []*Notification
)

const (
	TypeInfo    Type = "info"
	TypeAlert   Type = "alerta"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeAlert, TypeWarning, TypeError:
		return true
	}
	return false
}
