package services

import (
	"context"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/user"
)

type InvoiceService struct {
	invoiceRepository invoice.Repository
}

func NewInvoiceService(invoiceRepository invoice.Repository) ports.InvoiceService {
	return &InvoiceService{invoiceRepository: invoiceRepository}
}

func (is *InvoiceService) FindUserInvoices(ctx context.Context, userID user.ID, f invoice.Filter) (invoice.Invoices, error) {
	invs, err := is.invoiceRepository.FetchInvoicesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return f.Apply(invs), nil
}

func (is *InvoiceService) FindInvoices(ctx context.Context, f invoice.Filter) (invoice.Invoices, error) {
	invs, err := is.invoiceRepository.FetchInvoices(ctx)
	if err != nil {
		return nil, err
	}

	return f.Apply(invs), nil
}
