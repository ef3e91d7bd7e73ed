package auth

type (
	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	LoginResponse struct {
		Message  string `json:"message"`
		Role     string `json:"rol"`
		UserID   int64  `json:"id_user"`
		Name     string `json:"nombre"`
		LastName string `json:"apellido"`
		Token    string `json:"token"`
	}

	RegisterRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"nombre"`
		LastName string `json:"apellido"`
		Document string `json:"documento"`
		Phone    string `json:"celular"`
		Username string `json:"username"`
		Role     string `json:"rol"`
	}
	RegisterResponse struct {
		Message string `json:"message"`
		UserID  int64  `json:"id_user"`
	}

	RequestResetRequest struct {
		Username string `json:"username"`
	}
	RequestResetResponse struct {
		Message string `json:"message"`
		Token   string `json:"token,omitempty"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
)
