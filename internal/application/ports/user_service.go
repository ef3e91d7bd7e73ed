package ports

import (
	"context"

	"zentrix-api/internal/domain/erpcompany"
	"zentrix-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	Register(ctx context.Context, u user.User, password string) (*user.User, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
	SetActive(ctx context.Context, id user.ID, active bool) (*user.User, error)
}

type ErpCompanyService interface {
	FindCompanies(ctx context.Context) (erpcompany.Companies, error)
}
