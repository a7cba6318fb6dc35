package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/api/internal/api"
	"github.com/taskdeck/api/internal/domain"
	"github.com/taskdeck/api/internal/service/auth"
	"github.com/taskdeck/api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"duplicate username", store.ErrUsernameExists, http.StatusBadRequest},
		{"duplicate email", store.ErrEmailExists, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"domain validation sentinel", domain.ErrEmptyTitle, http.StatusBadRequest},
		{"validation error type", domain.NewValidationError("status", "has invalid value", domain.ErrInvalidStatus), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"forbidden", domain.ErrForbidden, "Insufficient permissions for this operation"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"username exists", store.ErrUsernameExists, "Username already exists"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"generic duplicate", fmt.Errorf("%w: unknown constraint", store.ErrDuplicate), "Resource already exists"},
		{"internal detail hidden", errors.New("pq: relation tasks does not exist"), "An unexpected error occurred"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.GetSafeErrorMessage(tc.err))
		})
	}

	t.Run("domain validation messages pass through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, domain.ErrEmptyTitle.Error(), api.GetSafeErrorMessage(domain.ErrEmptyTitle))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'LoginRequest.Identifier' Error:Field validation for 'Identifier' failed on the 'required' tag")
	assert.Equal(t, "Invalid Identifier: required field", api.SanitizeValidationError(err))

	err = errors.New(
		"Key: 'RegisterRequest.Email' Error:Field validation for 'Email' failed on the 'email' tag")
	assert.Equal(t, "Invalid Email: invalid email format", api.SanitizeValidationError(err))

	assert.Equal(t, "Validation error", api.SanitizeValidationError(errors.New("boom")))
}
