package errors

import "net/http"

// HTTPError is an error that carries the status code and the client-facing message.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError. Codes outside the 4xx/5xx range become 500.
func NewHTTPError(code int, message string) *HTTPError {
	if code < 400 || code > 599 {
		code = http.StatusInternalServerError
	}
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code.
func (e *HTTPError) StatusCode() int {
	return e.Code
}
