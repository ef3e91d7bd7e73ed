package erpcompany

import "time"

type (
	Company struct {
		ID        int64
		Name      string
		TaxID     string
		Address   string
		Email     string
		CreatedAt time.Time
	}
	Companies []*Company
)
