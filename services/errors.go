package services

import "errors"

// Error kinds returned by the service layer. Controllers translate these to
// HTTP status codes in one place; everything else surfaces as a wrapped
// internal error.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)
