package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.PersonID,
		&u.Name,
		&u.LastName,
		&u.Document,
		&u.Email,
		&u.Phone,

		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.State,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func mapUniqueViolation(err error) error {
	if !postgres.IsPgUniqueViolation(err) {
		return err
	}
	switch postgres.ConstraintName(err) {
	case ConstraintUsername:
		return user.ErrUsernameTaken
	case ConstraintDocument:
		return user.ErrDocumentTaken
	}
	return err
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(us), nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, int64(id))
}

func (r *Repository) FetchActiveByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.fetchOne(ctx, SelectActiveUserByUsername, username)
}

func (r *Repository) CreatePerson(ctx context.Context, req user.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(
		ctx,
		InsertPerson,
		req.Name, req.LastName, req.Document, req.Email, req.Phone,
	).Scan(&id)
	if err != nil {
		return 0, mapUniqueViolation(err)
	}

	return id, nil
}

func (r *Repository) CreateAccount(ctx context.Context, personID int64, req user.User) (user.ID, error) {
	var id int64
	err := r.db.QueryRow(
		ctx,
		InsertAccount,
		personID, req.Username, req.PasswordHash, req.Role.String(),
	).Scan(&id)
	if err != nil {
		return 0, mapUniqueViolation(err)
	}

	return user.ID(id), nil
}

func (r *Repository) DeletePerson(ctx context.Context, personID int64) error {
	if _, err := r.db.Exec(ctx, DeletePersonByID, personID); err != nil {
		return fmt.Errorf("delete person %d: %w", personID, err)
	}
	return nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	tag, err := r.db.Exec(ctx, UpdateUserByID,
		int64(req.ID), req.Name, req.LastName, req.Document, req.Email, req.Phone, req.Role.String(),
	)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FetchUserByID(ctx, req.ID)
}

func (r *Repository) UpdateState(ctx context.Context, id user.ID, state user.State) (*user.User, error) {
	tag, err := r.db.Exec(ctx, UpdateStateByID, int64(id), string(state))
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	return r.FetchUserByID(ctx, id)
}

func (r *Repository) UpdatePassword(ctx context.Context, id user.ID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, UpdatePasswordByID, int64(id), passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, CountAllUsers).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
