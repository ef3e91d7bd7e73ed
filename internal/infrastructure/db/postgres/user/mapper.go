package user

import (
	domain "zentrix-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	// rows are guarded by a CHECK constraint, an unknown role maps to ""
	role, _ := domain.ParseRole(model.Role)

	var u = &domain.User{
		ID:       domain.ID(model.ID),
		PersonID: model.PersonID,

		Name:     model.Name,
		LastName: model.LastName,
		Document: model.Document,
		Email:    model.Email,
		Phone:    model.Phone,

		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		Role:         role,
		State:        domain.State(model.State),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}
