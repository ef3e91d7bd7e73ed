package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"zentrix-api/internal/domain/user"
)

type (
	ID     int64
	Status string

	Invoice struct {
		ID           ID
		Number       string
		UserID       user.ID
		ErpCompanyID *int64
		TotalAmount  decimal.Decimal
		Status       Status
		IssueDate    time.Time
		DueDate      time.Time
		CreatedAt    time.Time

		// read model, filled by joined queries
		UserName string
		Username string
	}
	Invoices []*Invoice
)

const (
	StatusPending  Status = "pendiente"
	StatusFiled    Status = "radicada"
	StatusReturned Status = "devuelta"
	StatusOverdue  Status = "vencida"
	StatusPaid     Status = "paid"
)

var Statuses = []Status{StatusPending, StatusFiled, StatusReturned, StatusOverdue, StatusPaid}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Settled statuses are financially closed and never alerted on.
func (s Status) Settled() bool { return s == StatusPaid || s == StatusFiled }
