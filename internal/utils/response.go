package utils

import (
	"errors"
	"net/http"
)

// ErrorResponse is the uniform error body. Stack carries the wrapped error
// chain outside production; Detail carries upstream provider error text
// verbatim when one exists.
type ErrorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
	Detail  string `json:"error,omitempty"`
}

type AppError struct {
	Status  int
	Message string
	Detail  string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func WrapAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

func ErrInvalidInput(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func ErrUnauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func ErrNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message)
}

// AsAppError normalizes any error into an AppError, defaulting to 500.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Status: http.StatusInternalServerError, Message: "internal server error", Err: err}
}
