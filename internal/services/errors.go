package services

import "errors"

var (
	// ErrUserNotFound means the authenticated identity has no stored user.
	// It is a server-side inconsistency, not a client error.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidDate means a date did not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrDailyDataNotFound means the caller has no daily data for a date.
	ErrDailyDataNotFound = errors.New("daily data not found")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
