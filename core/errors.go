package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// AuthError is returned when an identity cannot be established (bad credentials, email taken, ...).
// It is shown to the user as is and never retried.
type AuthError struct {
	msg string
}

func NewAuthError(msg string) *AuthError {
	return &AuthError{msg}
}

func (err *AuthError) Error() string {
	return err.msg
}

// DomainError is returned when an operation does not apply to the current state (unknown course, not enrolled, ...).
type DomainError struct {
	msg string
}

func NewDomainError(msg string) *DomainError {
	return &DomainError{msg}
}

func (err *DomainError) Error() string {
	return err.msg
}

func IsAuthError(err error) bool {
	var aerr *AuthError
	return errors.As(err, &aerr)
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
