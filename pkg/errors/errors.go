package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError is one field-level violation in the shape the API exposes:
// value is the rejected input, msg the human message, param the field (or
// route) it refers to.
type FieldError struct {
	Value interface{} `json:"value"`
	Msg   string      `json:"msg"`
	Param string      `json:"param"`
}

type AppError struct {
	Code       string
	Message    string
	Status     int
	Violations []FieldError
	Err        error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Validation carries the full accumulated violation list. The status varies
// per route (the API answers 400 on some creates and 403 on updates), so
// callers pass it in.
func Validation(status int, violations []FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION",
		Message:    "payload rejected by validation rules",
		Status:     status,
		Violations: violations,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s não encontrado", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

// InvalidID marks a malformed document identifier. Distinct from NotFound:
// a well-formed id that matches nothing is an empty result, not an error.
func InvalidID(id string, err error) *AppError {
	return &AppError{
		Code:    "INVALID_ID",
		Message: fmt.Sprintf("o id %s informado não é válido", id),
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

// Upstream wraps a third-party API or storage driver failure, relaying the
// original error text to the client.
func Upstream(message string, err error) *AppError {
	return &AppError{
		Code:    "UPSTREAM",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func TooManyRequests(message string) *AppError {
	return &AppError{
		Code:    "TOO_MANY_REQUESTS",
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
