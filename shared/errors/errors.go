package errors

import (
	"errors"
	"net/http"
)

// ErrorWithStatusCode carries the HTTP status a failure should be reported
// with. Errors without one are reported with the caller's fallback status.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// StatusCode returns the status attached to err, or fallback.
func StatusCode(err error, fallback int) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return fallback
}

func BadRequest(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}
