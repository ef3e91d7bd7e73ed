package user

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts the canonical names in any casing and nothing else.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "user":
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }
