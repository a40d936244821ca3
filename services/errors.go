package services

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a password
	// mismatch; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUser reports a registration against a taken username.
	ErrDuplicateUser = errors.New("user already exists")
)
