package platform

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the platform.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platform returned %d", e.StatusCode)
	}
	return fmt.Sprintf("platform returned %d: %s", e.StatusCode, e.Message)
}

func statusIs(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsUnauthorized reports a 401 (invalid or missing token).
func IsUnauthorized(err error) bool { return statusIs(err, http.StatusUnauthorized) }

// IsForbidden reports a 403 (token lacks a tenant assignment).
func IsForbidden(err error) bool { return statusIs(err, http.StatusForbidden) }

// IsNotFound reports a 404 (unknown resource id).
func IsNotFound(err error) bool { return statusIs(err, http.StatusNotFound) }
