package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("authentication required")
	ErrPaymentRequired    = errors.New("active subscription required")
	ErrConflict           = errors.New("conflict with current state")
)

// ValidationError señala un campo requerido ausente en una petición.
// El mensaje nombra el campo para que el cliente pueda corregirlo.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// NewValidationError construye un ValidationError para el campo dado.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}
