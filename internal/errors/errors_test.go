package errors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMarkedErrorsMatchTheirSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		check    func(error) bool
		status   int
		notMatch []func(error) bool
	}{
		{
			name:     "invalid line item",
			err:      NewError("quantity must be positive").Mark(ErrInvalidLineItem),
			check:    IsInvalidLineItem,
			status:   http.StatusUnprocessableEntity,
			notMatch: []func(error) bool{IsInvalidDiscountConfiguration, IsUnsupportedDiscountKind, IsValidation},
		},
		{
			name:     "invalid discount configuration",
			err:      NewError("buy quantity must be positive").Mark(ErrInvalidDiscountConfiguration),
			check:    IsInvalidDiscountConfiguration,
			status:   http.StatusUnprocessableEntity,
			notMatch: []func(error) bool{IsInvalidLineItem, IsUnsupportedDiscountKind},
		},
		{
			name:     "unsupported discount kind",
			err:      NewErrorf("unsupported discount kind %q", "bogo-typo").Mark(ErrUnsupportedDiscountKind),
			check:    IsUnsupportedDiscountKind,
			status:   http.StatusUnprocessableEntity,
			notMatch: []func(error) bool{IsInvalidLineItem, IsInvalidDiscountConfiguration},
		},
		{
			name:   "validation",
			err:    NewError("bad request").WithHint("Invalid request format").Mark(ErrValidation),
			check:  IsValidation,
			status: http.StatusBadRequest,
		},
		{
			name:   "upstream failure",
			err:    WithError(New(ErrCodeHTTPClient, "boom")).Mark(ErrHTTPClient),
			check:  IsHTTPClient,
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.status, HTTPStatusFromErr(tt.err))
			for _, other := range tt.notMatch {
				assert.False(t, other(tt.err))
			}
		})
	}
}

func TestIsPricingError(t *testing.T) {
	assert.True(t, IsPricingError(NewError("x").Mark(ErrInvalidLineItem)))
	assert.True(t, IsPricingError(NewError("x").Mark(ErrUnsupportedDiscountKind)))
	assert.False(t, IsPricingError(NewError("x").Mark(ErrNotFound)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(NewError("plain").Error()))
	assert.Equal(t, ErrCodeSystemError, CodeFromErr(NewError("plain").Error()))
}

func TestHTTPStatusPrefersMostSpecificSentinel(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "not found reported by the backend",
			err:    errors.Mark(NewError("product gone").Mark(ErrNotFound), ErrHTTPClient),
			status: http.StatusNotFound,
			code:   ErrCodeNotFound,
		},
		{
			name:   "pricing refusal over validation",
			err:    errors.Mark(NewError("quantity above stock").Mark(ErrValidation), ErrInvalidLineItem),
			status: http.StatusUnprocessableEntity,
			code:   ErrCodeInvalidLineItem,
		},
		{
			name:   "permission over system",
			err:    errors.Mark(NewError("token rejected").Mark(ErrSystem), ErrPermissionDenied),
			status: http.StatusForbidden,
			code:   ErrCodePermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				assert.Equal(t, tt.status, HTTPStatusFromErr(tt.err))
			}
			assert.Equal(t, tt.code, CodeFromErr(tt.err))
		})
	}
}
