package user

import "time"

type (
	User struct {
		ID           int64
		PersonID     int64
		Name         string
		LastName     string
		Document     string
		Email        string
		Phone        string
		Username     string
		PasswordHash string
		Role         string
		State        string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
