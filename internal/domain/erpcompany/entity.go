package erpcompany

import "time"

type (
	ID      int64
	Company struct {
		ID        ID
		Name      string
		TaxID     string
		Address   string
		Email     string
		CreatedAt time.Time
	}
	Companies []*Company
)
