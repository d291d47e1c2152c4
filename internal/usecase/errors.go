package usecase

import (
	"errors"

	"laundry-booking/internal/booking"
	"laundry-booking/pkg/utils"
)

// ErrSessionNotFound means the session ID is unknown or was evicted
// from the store.
var ErrSessionNotFound = errors.New("unknown or expired session")

// ValidationError carries per-field messages from request validation.
// It matches booking.ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Is(target error) bool {
	return target == booking.ErrValidation
}
