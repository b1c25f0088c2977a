// Package shared defines sentinel errors used across the account manager.
// Callers should use errors.Is to match these values.
package shared

import "errors"

var (

	// common errors
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")

	// entity construction errors
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// password complexity errors
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordNoDigit  = errors.New("password must contain at least one digit")
	ErrPasswordNoUpper  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower  = errors.New("password must contain at least one lowercase letter")

	// store uniqueness errors
	ErrDuplicateID    = errors.New("id already exists")
	ErrDuplicateEmail = errors.New("email already exists")

	// auth-specific errors
	ErrWrongPassword    = errors.New("wrong password")
	ErrAlreadyLoggedOut = errors.New("already logged out")

	// storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)
