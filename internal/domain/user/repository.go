package user

import (
	"context"
)

// Repository returns (nil, nil) from the Fetch* lookups when nothing matches.
type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchActiveByUsername(ctx context.Context, username string) (*User, error)
	FetchUsers(ctx context.Context) (Users, error)
	CreatePerson(ctx context.Context, req User) (int64, error)
	CreateAccount(ctx context.Context, personID int64, req User) (ID, error)
	DeletePerson(ctx context.Context, personID int64) error
	UpdateUser(ctx context.Context, req User) (*User, error)
	UpdateState(ctx context.Context, id ID, state State) (*User, error)
	UpdatePassword(ctx context.Context, id ID, passwordHash string) error
	CountUsers(ctx context.Context) (int, error)
}
