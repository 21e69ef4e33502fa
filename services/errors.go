package services

import "errors"

// Error taxonomy surfaced to the HTTP layer. Authentication failures collapse
// to ErrUnauthorized regardless of cause; booking failures stay specific
// because the caller acts differently on each.
var (
	ErrUnauthorized    = errors.New("invalid or expired token")
	ErrForbidden       = errors.New("operation not allowed for this user")
	ErrNotFound        = errors.New("record not found")
	ErrConflict        = errors.New("record already exists")
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrSlotUnavailable = errors.New("appointment time not available")
	ErrValidation      = errors.New("invalid input")
)
