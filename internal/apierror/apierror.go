// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Status carries the HTTP code the handler layer should respond with; it is
// never serialized.
type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string { return e.Detail }

func New(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Detail: msg}
}

// NotFound marks a referenced entity (mesa, receta, producto, venta…) that
// does not exist. Never retried automatically.
func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Detail: msg}
}

// BadRequest marks a business-rule violation: stock insuficiente, producto no
// vendible, línea de venta mal formada, transición de estado no permitida.
func BadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Detail: msg}
}

// Conflict marks a duplicate unique key (nombre de receta, NIT de cliente).
func Conflict(msg string) *APIError {
	return &APIError{Status: http.StatusConflict, Detail: msg}
}

// Internal wraps unexpected failures. The detail shown to clients is generic;
// the real cause must be logged server-side before building this error.
func Internal(msg string) *APIError {
	if msg == "" {
		msg = "Error interno del servidor"
	}
	return &APIError{Status: http.StatusInternalServerError, Detail: msg}
}

// IsAPIError extracts an *APIError from an error chain.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
