package apperrors

import "errors"

// ErrNotFound covers both a missing row and a row owned by another user.
// The two cases are never distinguished to the caller.
var ErrNotFound = errors.New("not found")

// ValidationError maps each form field to its first violated rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return field + ": " + msg
	}
	return "validation failed"
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AuthError is a credential failure surfaced with a generic message so the
// caller cannot tell a bad email from a bad password.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

const (
	MsgInvalidLogin    = "Please enter a correct email and password. Note that both fields may be case-sensitive."
	MsgInactiveAccount = "This account is inactive."
)

// AsAuthError unwraps err into an *AuthError if it is one.
func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
