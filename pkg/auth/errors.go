package auth

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTermsNotAccepted   = errors.New("terms and conditions must be accepted")
	ErrUnknownRole        = errors.New("unknown role")
	ErrQuickLoginDisabled = errors.New("quick login is disabled")
	ErrUnknownSuperUser   = errors.New("unknown super user")
)
