package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrDocumentTaken = errors.New("document already registered")
)
