package errorbank

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodePerKind(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindConflict, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindUnprocessableEntity, http.StatusUnprocessableEntity},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.status, New(tc.kind, "boom").StatusCode())
		})
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("disk on fire")
	appErr := From(cause)

	require.NotNil(t, appErr)
	assert.Equal(t, KindInternal, appErr.Kind())
	assert.ErrorIs(t, appErr, cause)
}

func TestFromPreservesAppErrors(t *testing.T) {
	original := Forbidden("insufficient role", WithDetail("role", "Customer"))
	appErr := From(original)

	assert.Same(t, original, appErr)
	assert.Equal(t, "Customer", appErr.Details()["role"])
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("duplicate key")
	appErr := Conflict("email already registered", WithCause(cause))

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Error(), "duplicate key")
}
