package mocks

import (
	"context"

	"github.com/taskdeck/api/internal/domain"
	"github.com/taskdeck/api/internal/store"
)

// MockUserStore is a configurable test double for store.UserStore.
// Unset function fields return store.ErrUserNotFound.
type MockUserStore struct {
	CreateFn          func(ctx context.Context, user *domain.User) error
	GetByIDFn         func(ctx context.Context, id int64) (*domain.User, error)
	GetByIdentifierFn func(ctx context.Context, identifier string) (*domain.User, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

// GetByIdentifier implements store.UserStore.
func (m *MockUserStore) GetByIdentifier(
	ctx context.Context,
	identifier string,
) (*domain.User, error) {
	if m.GetByIdentifierFn != nil {
		return m.GetByIdentifierFn(ctx, identifier)
	}
	return nil, store.ErrUserNotFound
}
