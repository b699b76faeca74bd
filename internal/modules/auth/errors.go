package auth

import "errors"

var (
	ErrMissingFields      = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
