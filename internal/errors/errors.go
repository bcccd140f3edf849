package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any login failure. Unknown user,
	// wrong password and inactive account all look the same to the caller.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrInvalidToken is returned when a bearer token is missing, malformed or expired.
	ErrInvalidToken = errors.New("Invalid or expired token")
	// ErrInvalidCoordinates is returned when a GPS point is out of range.
	ErrInvalidCoordinates = errors.New("Invalid GPS coordinates")
	// ErrInvalidAmount is returned when an expense amount does not parse or is out of range.
	ErrInvalidAmount = errors.New("Invalid amount. Must be between 0 and 10000 euros")
	// ErrInvalidDescription is returned when an expense description is too short or too long.
	ErrInvalidDescription = errors.New("Description must be between 3 and 200 characters")
)

// ErrorResponse is the error body used by the record endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError pairs a status code with a response body.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown becomes
// a fixed 500 body; internal detail never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: err.Error()}
	case errors.Is(err, ErrInvalidToken):
		return &HTTPError{StatusCode: http.StatusUnauthorized, Message: err.Error()}
	case errors.Is(err, ErrInvalidCoordinates),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidDescription):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error()}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}
	}
}
