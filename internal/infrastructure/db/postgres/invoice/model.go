package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	Invoice struct {
		ID           int64
		Number       string
		UserID       int64
		ErpCompanyID *int64
		TotalAmount  decimal.Decimal
		Status       string
		IssueDate    time.Time
		DueDate      time.Time
		CreatedAt    time.Time
		UserName     string
		Username     string
	}
	Invoices []*Invoice
)
