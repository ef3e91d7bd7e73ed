package user

import (
	"strings"
	"time"
)

type (
	ID    int64
	State string
	User  struct {
		ID       ID
		PersonID int64

		Name     string
		LastName string
		Document string
		Email    string
		Phone    string

		Username     string
		PasswordHash string
		Role         Role
		State        State

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

const (
	StateActive   State = "activo"
	StateInactive State = "inactivo"
)

func (u *User) IsActive() bool { return u.State == StateActive }

func (u *User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.LastName)
}
