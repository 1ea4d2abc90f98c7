// Package services holds the business operations behind the HTTP handlers.
package services

import (
	"errors"
	"fmt"

	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/store"
)

var (
	ErrDuplicateEmail      = store.ErrDuplicateEmail
	ErrNotFound            = store.ErrNotFound
	ErrInvalidCredential   = errors.New("invalid email or password")
	ErrUpstreamUnavailable = ai.ErrUpstreamUnavailable
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
