package auth

import (
	"zentrix-api/internal/domain/user"
)

func ToDomainUser(req RegisterRequest) (user.User, error) {
	role, err := user.ParseRole(req.Role)
	if err != nil {
		return user.User{}, err
	}

	return user.User{
		Name:     req.Name,
		LastName: req.LastName,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Username: req.Username,
		Role:     role,
	}, nil
}
