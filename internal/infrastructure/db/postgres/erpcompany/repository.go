package erpcompany

import (
	"context"

	"zentrix-api/internal/domain/erpcompany"
	"zentrix-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) erpcompany.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchCompanies(ctx context.Context) (erpcompany.Companies, error) {
	rows, err := r.db.Query(ctx, SelectCompanies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs Companies
	for rows.Next() {
		c := new(Company)
		if err = rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(cs), nil
}

// CreateCompany is idempotent on the tax id so the seed can be rerun.
func (r *Repository) CreateCompany(ctx context.Context, req erpcompany.Company) (*erpcompany.Company, error) {
	out := req
	var id int64
	if err := r.db.QueryRow(ctx, InsertCompany,
		req.Name, req.TaxID, req.Address, req.Email,
	).Scan(&id, &out.CreatedAt); err != nil {
		return nil, err
	}
	out.ID = erpcompany.ID(id)

	return &out, nil
}
