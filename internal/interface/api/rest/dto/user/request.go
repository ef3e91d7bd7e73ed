package user

type (
	// UpdateRequest carries the editable profile fields of a user.
	UpdateRequest struct {
		Name     string `json:"nombre"`
		LastName string `json:"apellido"`
		Document string `json:"documento"`
		Email    string `json:"email"`
		Phone    string `json:"celular"`
		Role     string `json:"rol"`
	}
	StatusRequest struct {
		Active *bool `json:"active"`
	}
)
