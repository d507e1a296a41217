package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a classified backend call failure. Every non-2xx response
// and every transport failure surfaces as exactly one APIError.
type APIError struct {
	// Message is human-readable: the response's "detail" field, else its
	// "message" field, else "HTTP <status>".
	Message string
	// Status is the HTTP status code, or 0 when no response was received.
	Status int
	// Data is the parsed response body (JSON-decoded value or raw text).
	// Nil for transport failures.
	Data any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// IsTransport reports whether the failure happened before any HTTP
// response arrived.
func (e *APIError) IsTransport() bool {
	return e.Status == 0
}

// IsUnauthorized reports whether a wrapped error is a 401 APIError.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsAPINotFound reports whether a wrapped error is a 404 APIError.
func IsAPINotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// NewAPIError builds an APIError from a parsed response body, applying
// the detail > message > "HTTP <status>" priority rule.
func NewAPIError(status int, body any) *APIError {
	msg := ""
	if m, ok := body.(map[string]any); ok {
		if d, ok := m["detail"].(string); ok && d != "" {
			msg = d
		} else if d, ok := m["message"].(string); ok && d != "" {
			msg = d
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Message: msg, Status: status, Data: body}
}
