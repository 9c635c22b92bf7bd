package models

import "errors"

var (
	ErrConflict           = errors.New("username already taken")
	ErrInvalidPassword    = errors.New("password does not meet the policy")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
)
