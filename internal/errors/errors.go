package errors

import (
	"errors"
	"net/http"
)

// AppError is the application error type. Every expected business failure is
// one of these; anything else surfaces as a 500 at the response boundary.
type AppError struct {
	Status  int
	Code    string
	Message string
	Data    interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates an AppError with an explicit status and code
func New(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// WithData attaches detail data to the error (validation fields, etc.)
func (e *AppError) WithData(data interface{}) *AppError {
	e.Data = data
	return e
}

func NewUnauthorized(code, message string) *AppError {
	if message == "" {
		message = "Not authorized"
	}
	return New(http.StatusUnauthorized, code, message)
}

func NewForbidden(code, message string) *AppError {
	if message == "" {
		message = "Access denied"
	}
	return New(http.StatusForbidden, code, message)
}

func NewNotFound(code, message string) *AppError {
	if message == "" {
		message = "Resource not found"
	}
	return New(http.StatusNotFound, code, message)
}

func NewBadRequest(code, message string) *AppError {
	if message == "" {
		message = "Invalid request data"
	}
	return New(http.StatusBadRequest, code, message)
}

func NewConflict(code, message string) *AppError {
	if message == "" {
		message = "Conflict"
	}
	return New(http.StatusConflict, code, message)
}

func NewInternal(message string) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return New(http.StatusInternalServerError, InternalServerError, message)
}

// AsAppError unwraps err into an *AppError when it is one
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
