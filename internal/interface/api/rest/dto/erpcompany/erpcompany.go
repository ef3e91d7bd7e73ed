package erpcompany

import (
	"zentrix-api/internal/domain/erpcompany"
)

type (
	Company struct {
		ID      int64  `json:"id_erp_company"`
		Name    string `json:"nombre"`
		TaxID   string `json:"nit"`
		Address string `json:"direccion"`
		Email   string `json:"email"`
	}
	Companies    []Company
	ResponseData struct {
		Data Companies `json:"data"`
	}
)

func ToResponseCompanies(ds erpcompany.Companies) Companies {
	out := make(Companies, len(ds))
	for idx, d := range ds {
		out[idx] = Company{
			ID:      int64(d.ID),
			Name:    d.Name,
			TaxID:   d.TaxID,
			Address: d.Address,
			Email:   d.Email,
		}
	}

	return out
}
