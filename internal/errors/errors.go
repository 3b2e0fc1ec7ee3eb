package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = New(ErrCodeNotFound, "resource not found")
	ErrValidation       = New(ErrCodeValidation, "validation error")
	ErrInvalidOperation = New(ErrCodeInvalidOperation, "invalid operation")
	ErrPermissionDenied = New(ErrCodePermissionDenied, "permission denied")
	ErrHTTPClient       = New(ErrCodeHTTPClient, "http client error")
	ErrSystem           = New(ErrCodeSystemError, "system error")

	// pricing failures raised by the checkout calculator
	ErrInvalidLineItem              = New(ErrCodeInvalidLineItem, "invalid line item")
	ErrInvalidDiscountConfiguration = New(ErrCodeInvalidDiscountConfiguration, "invalid discount configuration")
	ErrUnsupportedDiscountKind      = New(ErrCodeUnsupportedDiscountKind, "unsupported discount kind")

	// maps errors to http status codes, most specific first; an error carrying
	// several sentinels gets the status of the first one it matches
	statusCodes = []struct {
		err    *InternalError
		status int
	}{
		{ErrInvalidLineItem, http.StatusUnprocessableEntity},
		{ErrInvalidDiscountConfiguration, http.StatusUnprocessableEntity},
		{ErrUnsupportedDiscountKind, http.StatusUnprocessableEntity},
		{ErrNotFound, http.StatusNotFound},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrValidation, http.StatusBadRequest},
		{ErrInvalidOperation, http.StatusBadRequest},
		{ErrHTTPClient, http.StatusBadGateway},
		{ErrSystem, http.StatusInternalServerError},
	}
)

const (
	ErrCodeHTTPClient                   = "http_client_error"
	ErrCodeSystemError                  = "system_error"
	ErrCodeNotFound                     = "not_found"
	ErrCodeValidation                   = "validation_error"
	ErrCodeInvalidOperation             = "invalid_operation"
	ErrCodePermissionDenied             = "permission_denied"
	ErrCodeInvalidLineItem              = "invalid_line_item"
	ErrCodeInvalidDiscountConfiguration = "invalid_discount_configuration"
	ErrCodeUnsupportedDiscountKind      = "unsupported_discount_kind"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// New creates a new InternalError
func New(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is reports whether err carries the given sentinel anywhere in its chain or marks
func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsHTTPClient checks if an error is an http client error
func IsHTTPClient(err error) bool {
	return errors.Is(err, ErrHTTPClient)
}

// IsInvalidLineItem checks if an error was raised for a malformed line item
func IsInvalidLineItem(err error) bool {
	return errors.Is(err, ErrInvalidLineItem)
}

// IsInvalidDiscountConfiguration checks if an error was raised for a malformed discount
func IsInvalidDiscountConfiguration(err error) bool {
	return errors.Is(err, ErrInvalidDiscountConfiguration)
}

// IsUnsupportedDiscountKind checks if an error was raised for an unknown discount kind
func IsUnsupportedDiscountKind(err error) bool {
	return errors.Is(err, ErrUnsupportedDiscountKind)
}

// IsPricingError reports whether the error is one of the checkout calculator's refusals
func IsPricingError(err error) bool {
	return IsInvalidLineItem(err) || IsInvalidDiscountConfiguration(err) || IsUnsupportedDiscountKind(err)
}

func HTTPStatusFromErr(err error) int {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return sc.status
		}
	}
	return http.StatusInternalServerError
}

// CodeFromErr returns the code of the sentinel that decides the error's status
func CodeFromErr(err error) string {
	for _, sc := range statusCodes {
		if errors.Is(err, sc.err) {
			return sc.err.Code
		}
	}
	return ErrCodeSystemError
}
