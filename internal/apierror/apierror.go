// Package apierror provides the standard error envelope for the API.
// All 4xx/5xx responses go through this package so that internal details
// (stack traces, DB errors) never reach clients.
package apierror

// APIError is the canonical error body for all failing HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps per-field validation failures.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
