package services

import (
	"context"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/erpcompany"
)

type ErpCompanyService struct {
	companyRepository erpcompany.Repository
}

func NewErpCompanyService(companyRepository erpcompany.Repository) ports.ErpCompanyService {
	return &ErpCompanyService{companyRepository: companyRepository}
}

func (s *ErpCompanyService) FindCompanies(ctx context.Context) (erpcompany.Companies, error) {
	return s.companyRepository.FetchCompanies(ctx)
}
