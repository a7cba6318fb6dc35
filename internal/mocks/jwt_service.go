package mocks

import (
	"context"

	"github.com/taskdeck/api/internal/domain"
	"github.com/taskdeck/api/internal/service/auth"
)

// MockJWTService is a configurable test double for auth.JWTService.
type MockJWTService struct {
	// Token and GenerateErr control GenerateToken.
	Token       string
	GenerateErr error

	// Claims and ValidateErr control ValidateToken. A zero-value mock
	// rejects every token with auth.ErrInvalidToken rather than
	// succeeding with nil claims.
	Claims      *auth.Claims
	ValidateErr error

	// Last arguments seen, for assertion.
	LastUserID int64
	LastRole   domain.Role
	LastToken  string
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.
func (m *MockJWTService) GenerateToken(
	_ context.Context,
	userID int64,
	role domain.Role,
) (string, error) {
	m.LastUserID = userID
	m.LastRole = role
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-token", nil
}

// ValidateToken implements auth.JWTService.
func (m *MockJWTService) ValidateToken(_ context.Context, tokenString string) (*auth.Claims, error) {
	m.LastToken = tokenString
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	if m.Claims == nil {
		return nil, auth.ErrInvalidToken
	}
	return m.Claims, nil
}
