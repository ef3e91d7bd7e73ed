package invoice

import (
	domain "zentrix-api/internal/domain/invoice"
	"zentrix-api/internal/domain/user"
)

func fromDBModel(model *Invoice) *domain.Invoice {
	return &domain.Invoice{
		ID:           domain.ID(model.ID),
		Number:       model.Number,
		UserID:       user.ID(model.UserID),
		ErpCompanyID: model.ErpCompanyID,
		TotalAmount:  model.TotalAmount,
		Status:       domain.Status(model.Status),
		IssueDate:    model.IssueDate,
		DueDate:      model.DueDate,
		CreatedAt:    model.CreatedAt,
		UserName:     model.UserName,
		Username:     model.Username,
	}
}

func fromDBModels(models Invoices) domain.Invoices {
	invs := make(domain.Invoices, len(models))
	for idx, m := range models {
		invs[idx] = fromDBModel(m)
	}

	return invs
}
