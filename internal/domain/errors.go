package domain

import (
	"errors"
	"fmt"
)

// Account errors
var (
	// ErrAccountExists deliberately does not say whether the username or the
	// email collided.
	ErrAccountExists      = errors.New("username or email already exists")
	ErrAccountNotFound    = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Flower errors
var (
	ErrFlowerExists = errors.New("flower already exists for entry")
)

// ValidationError reports a client-correctable problem with a single input
// field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
