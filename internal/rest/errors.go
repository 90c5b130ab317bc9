package rest

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the board API
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the server's {"message": ...} or, when the body carries
	// none, the HTTP status text
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// NotFound reports whether the server answered 404
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
