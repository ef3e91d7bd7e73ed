package notification

import (
	"zentrix-api/internal/domain/invoice"
	domain "zentrix-api/internal/domain/notification"
	"zentrix-api/internal/domain/user"
)

func fromDBModel(model *Notification) *domain.Notification {
	n := &domain.Notification{
		ID:       domain.ID(model.ID),
		UserID:   user.ID(model.UserID),
		Message:  model.Message,
		Type:     domain.Type(model.Type),
		IsRead:   model.IsRead,
		SentDate: model.SentDate,
		UserName: model.UserName,
		Username: model.Username,
	}
	if model.InvoiceID != nil {
		id := invoice.ID(*model.InvoiceID)
		n.InvoiceID = &id
	}

	return n
}

func fromDBModels(models Notifications) domain.Notifications {
	ns := make(domain.Notifications, len(models))
	for idx, m := range models {
		ns[idx] = fromDBModel(m)
	}

	return ns
}

func invoiceIDArg(id *invoice.ID) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}

func userIDArg(id *user.ID) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}
