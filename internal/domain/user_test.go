package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user with explicit role", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("alice", "alice@example.com", "correct horse battery", domain.RoleAdmin)
		require.NoError(t, err)

		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, domain.RoleAdmin, user.Role)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	t.Run("empty role defaults to user", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("bob", "bob@example.com", "password123", "")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
	})

	testCases := []struct {
		name     string
		username string
		email    string
		password string
		role     domain.Role
		wantErr  error
	}{
		{
			name:     "empty username",
			username: "",
			email:    "a@example.com",
			password: "password123",
			wantErr:  domain.ErrEmptyUsername,
		},
		{
			name:     "username too short",
			username: "ab",
			email:    "a@example.com",
			password: "password123",
			wantErr:  domain.ErrUsernameTooShort,
		},
		{
			name:     "empty email",
			username: "alice",
			email:    "",
			password: "password123",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			username: "alice",
			email:    "not-an-email",
			password: "password123",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "email missing domain dot",
			username: "alice",
			email:    "alice@localhost",
			password: "password123",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "password too short",
			username: "alice",
			email:    "alice@example.com",
			password: "short",
			wantErr:  domain.ErrPasswordTooShort,
		},
		{
			name:     "password exceeds bcrypt limit",
			username: "alice",
			email:    "alice@example.com",
			password: string(make([]byte, 73)),
			wantErr:  domain.ErrPasswordTooLong,
		},
		{
			name:     "unknown role",
			username: "alice",
			email:    "alice@example.com",
			password: "password123",
			role:     domain.Role("superuser"),
			wantErr:  domain.ErrInvalidRole,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, err := domain.NewUser(tc.username, tc.email, tc.password, tc.role)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// Users loaded from the store carry only the hash; that must validate.
	user := &domain.User{
		ID:             1,
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Role:           domain.RoleUser,
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}

func TestUserJSONHidesCredentials(t *testing.T) {
	t.Parallel()

	user := &domain.User{
		ID:             7,
		Username:       "alice",
		Email:          "alice@example.com",
		Password:       "plaintext-secret",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Role:           domain.RoleUser,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "plaintext-secret")
	assert.NotContains(t, string(data), "$2a$10$")
	assert.Contains(t, string(data), `"username":"alice"`)
}

func TestRoleIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.RoleUser.IsValid())
	assert.True(t, domain.RoleAdmin.IsValid())
	assert.False(t, domain.Role("").IsValid())
	assert.False(t, domain.Role("root").IsValid())
}
