package user

import (
	"zentrix-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        int64(uDomain.ID),
		Name:      uDomain.Name,
		LastName:  uDomain.LastName,
		Document:  uDomain.Document,
		Email:     uDomain.Email,
		Phone:     uDomain.Phone,
		Username:  uDomain.Username,
		Role:      uDomain.Role.String(),
		State:     string(uDomain.State),
		CreatedAt: uDomain.CreatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ToDomainUser expects a request that already passed validation.
func ToDomainUser(id user.ID, req UpdateRequest) (user.User, error) {
	role, err := user.ParseRole(req.Role)
	if err != nil {
		return user.User{}, err
	}

	var u = user.User{
		ID:       id,
		Name:     req.Name,
		LastName: req.LastName,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     role,
	}

	return u, nil
}
