package erpcompany

import "context"

type Repository interface {
	FetchCompanies(ctx context.Context) (Companies, error)
	CreateCompany(ctx context.Context, req Company) (*Company, error)
}
