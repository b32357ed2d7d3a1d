package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(New(KindConflict, "already friends")))
	assert.Equal(t, KindInternal, KindOf(errors.New("raw storage error")))

	// Wrapped errors keep their kind through fmt wrapping.
	wrapped := fmt.Errorf("handler: %w", New(KindForbidden, "not yours"))
	assert.Equal(t, KindForbidden, KindOf(wrapped))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Wrap(cause, KindConflict, "request already exists")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CONFLICT")
	assert.Contains(t, err.Error(), cause.Error())
}

func TestPublicMessageHidesInternalDetail(t *testing.T) {
	cause := errors.New("pq: connection refused")

	assert.Equal(t, "Internal server error", PublicMessage(Wrap(cause, KindInternal, "failed to load user")))
	assert.Equal(t, "Internal server error", PublicMessage(cause))
	assert.Equal(t, "User not found", PublicMessage(New(KindNotFound, "User not found")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindInvalidOperation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindForbidden, http.StatusForbidden},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(New(tt.kind, "msg")), "kind %s", tt.kind)
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("unclassified")))
}
