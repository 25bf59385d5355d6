package model_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hiredesk/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind model.ErrorKind
		want int
	}{
		{model.KindUnauthenticated, http.StatusUnauthorized},
		{model.KindPermissionDenied, http.StatusForbidden},
		{model.KindInvalidArgument, http.StatusBadRequest},
		{model.KindInternal, http.StatusInternalServerError},
		{model.ErrorKind("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.HTTPStatus(), "kind %s", tt.kind)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, model.KindUnauthenticated, model.KindOf(model.Unauthenticated("no caller")))
	assert.Equal(t, model.KindPermissionDenied, model.KindOf(model.PermissionDenied("role mismatch")))
	assert.Equal(t, model.KindInvalidArgument, model.KindOf(model.InvalidArgument("missing fields")))
	assert.Equal(t, model.KindInternal, model.KindOf(model.Internal("boom", errors.New("db down"))))

	// Wrapped structured errors keep their kind.
	wrapped := fmt.Errorf("handler: %w", model.PermissionDenied("nope"))
	assert.Equal(t, model.KindPermissionDenied, model.KindOf(wrapped))

	// Plain errors default to internal.
	assert.Equal(t, model.KindInternal, model.KindOf(errors.New("plain")))
}

func TestAppErrorMessage(t *testing.T) {
	err := model.Internal("Failed to send email", errors.New("dial timeout"))
	assert.Equal(t, "Failed to send email: dial timeout", err.Error())

	bare := model.InvalidArgument("Missing required fields: email, password")
	assert.Equal(t, "Missing required fields: email, password", bare.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := model.Internal("Failed to delete user", cause)

	assert.True(t, errors.Is(err, cause))
}
