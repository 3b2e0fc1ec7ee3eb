package httpclient

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/openshop/storefront/internal/errors"
)

// Error represents a non-2xx response from an upstream service
type Error struct {
	*errors.InternalError
	StatusCode int
	Response   []byte
}

func (e *Error) Unwrap() error {
	return e.InternalError.Unwrap()
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.InternalError.Error(), e.StatusCode)
}

// NewError creates a new HTTP client error
func NewError(statusCode int, response []byte) *Error {
	return &Error{
		InternalError: errors.New(errors.ErrCodeHTTPClient, "http client error"),
		StatusCode:    statusCode,
		Response:      response,
	}
}

// IsHTTPError checks if an error is an HTTP client error
func IsHTTPError(err error) (*Error, bool) {
	var httpErr *Error
	if goerrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an upstream response with the given status code
func IsStatus(err error, status int) bool {
	httpErr, ok := IsHTTPError(err)
	return ok && httpErr.StatusCode == status
}

// IsClientError reports whether the upstream rejected the request itself (4xx)
func IsClientError(err error) bool {
	httpErr, ok := IsHTTPError(err)
	return ok && httpErr.StatusCode >= http.StatusBadRequest && httpErr.StatusCode < http.StatusInternalServerError
}
