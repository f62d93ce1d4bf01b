package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrValidation      = errors.New("validation failed")
	ErrTooManyAttempts = errors.New("too many login attempts")
)
