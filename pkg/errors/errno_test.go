package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeCode(t *testing.T) {
	tests := []struct {
		service  int
		category int
		sequence int
		want     int
	}{
		{0, 0, 0, 0},
		{0, 2, 1, 2001},
		{20, 3, 2, 2003002},
		{90, 10, 1, 9010001},
	}

	for _, tt := range tests {
		got := MakeCode(tt.service, tt.category, tt.sequence)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.service, ServiceOf(got))
		assert.Equal(t, tt.category, CategoryOf(got))
	}
}

func TestErrnoHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrMissingToken.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidToken.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, ErrProfileNotFound.HTTPStatus())
	assert.Equal(t, http.StatusForbidden, ErrNoPermission.HTTPStatus())
	assert.Equal(t, http.StatusForbidden, ErrOwnershipDenied.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrInternal.HTTPStatus())
}

func TestWithMessagePreservesCode(t *testing.T) {
	e := ErrInvalidParam.WithMessage("employee id is required")
	assert.Equal(t, ErrInvalidParam.Code, e.Code)
	assert.Equal(t, ErrInvalidParam.HTTPStatus(), e.HTTPStatus())
	assert.Equal(t, "employee id is required", e.Message)

	// the original must be untouched
	assert.Equal(t, "Invalid parameter", ErrInvalidParam.Message)
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	e := ErrDatabase.WithCause(cause)
	assert.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "connection refused")
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	e := FromError(ErrForbidden)
	assert.Equal(t, ErrForbidden.Code, e.Code)

	wrapped := fmt.Errorf("store: %w", ErrRecordNotFound)
	assert.Equal(t, ErrRecordNotFound.Code, FromError(wrapped).Code)

	plain := FromError(fmt.Errorf("boom"))
	assert.Equal(t, ErrInternal.Code, plain.Code)
}

func TestIsCode(t *testing.T) {
	err := ErrProfileNotFound.WithMessage("uid u1")
	assert.True(t, IsCode(err, ErrProfileNotFound.Code))
	assert.False(t, IsCode(err, ErrNoPermission.Code))
	assert.False(t, IsCode(fmt.Errorf("boom"), ErrInternal.Code))
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(ErrNoPermission.Code)
	assert.True(t, ok)
	assert.Equal(t, ErrNoPermission, e)

	_, ok = Lookup(9999999)
	assert.False(t, ok)
}
