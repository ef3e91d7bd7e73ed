package user

import (
	"time"
)

type (
	User struct {
		ID        int64     `json:"id_user"`
		Name      string    `json:"nombre"`
		LastName  string    `json:"apellido"`
		Document  string    `json:"documento"`
		Email     string    `json:"email"`
		Phone     string    `json:"celular"`
		Username  string    `json:"username"`
		Role      string    `json:"rol"`
		State     string    `json:"estado"`
		CreatedAt time.Time `json:"created_at,omitempty"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
