package erpcompany

import (
	domain "zentrix-api/internal/domain/erpcompany"
)

func fromDBModel(model *Company) *domain.Company {
	return &domain.Company{
		ID:        domain.ID(model.ID),
		Name:      model.Name,
		TaxID:     model.TaxID,
		Address:   model.Address,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
	}
}

func fromDBModels(models Companies) domain.Companies {
	cs := make(domain.Companies, len(models))
	for idx, m := range models {
		cs[idx] = fromDBModel(m)
	}

	return cs
}
