package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrDuplicateIdentity is returned when registering an email that already exists.
	ErrDuplicateIdentity = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound is returned when a record is absent or owned by someone else.
	ErrNotFound = errors.New("record not found")
	// ErrUpstreamUnavailable is returned when the catalog API fails for
	// reasons unrelated to the query itself.
	ErrUpstreamUnavailable = errors.New("catalog service unavailable")
)

// NoResultsError is returned when every search strategy comes up empty.
type NoResultsError struct {
	Query string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no results found for %q", e.Query)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var noResults *NoResultsError
	switch {
	case errors.Is(err, ErrDuplicateIdentity):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_IDENTITY")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.As(err, &noResults):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_SEARCH_RESULTS")
	case errors.Is(err, ErrUpstreamUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "UPSTREAM_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
