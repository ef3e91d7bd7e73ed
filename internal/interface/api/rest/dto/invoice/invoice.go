package invoice

import (
	"github.com/shopspring/decimal"

	"zentrix-api/internal/domain/invoice"
)

const DateLayout = "2006-01-02"

type (
	Invoice struct {
		ID           int64           `json:"id_invoice"`
		Number       string          `json:"numero"`
		UserID       int64           `json:"id_user"`
		ErpCompanyID *int64          `json:"id_erp_company"`
		TotalAmount  decimal.Decimal `json:"total_amount"`
		Status       string          `json:"status"`
		IssueDate    string          `json:"issue_date"`
		DueDate      string          `json:"due_date"`
		UserName     string          `json:"user_name,omitempty"`
		Username     string          `json:"username,omitempty"`
	}
	Invoices     []Invoice
	ResponseData struct {
		Data Invoices `json:"data"`
	}
)

func ToResponseInvoice(d invoice.Invoice) Invoice {
	return Invoice{
		ID:           int64(d.ID),
		Number:       d.Number,
		UserID:       int64(d.UserID),
		ErpCompanyID: d.ErpCompanyID,
		TotalAmount:  d.TotalAmount,
		Status:       string(d.Status),
		IssueDate:    d.IssueDate.Format(DateLayout),
		DueDate:      d.DueDate.Format(DateLayout),
		UserName:     d.UserName,
		Username:     d.Username,
	}
}

func ToResponseInvoices(ds invoice.Invoices) Invoices {
	out := make(Invoices, len(ds))
	for idx, d := range ds {
		out[idx] = ToResponseInvoice(*d)
	}

	return out
}
