package mocks

import (
	"context"

	"github.com/taskdeck/api/internal/domain"
	"github.com/taskdeck/api/internal/store"
)

// MockTaskStore is a configurable test double for store.TaskStore.
// Unset function fields return store.ErrTaskNotFound where a lookup is
// implied, and succeed otherwise.
type MockTaskStore struct {
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	ListFn    func(ctx context.Context, ownerID int64, filter store.TaskFilter, page store.Page) ([]*domain.Task, int, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id, ownerID int64) error
	ListAllFn func(ctx context.Context) ([]*domain.TaskWithOwner, error)
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements store.TaskStore.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

// GetByID implements store.TaskStore.
func (m *MockTaskStore) GetByID(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id, ownerID)
	}
	return nil, store.ErrTaskNotFound
}

// List implements store.TaskStore.
func (m *MockTaskStore) List(
	ctx context.Context,
	ownerID int64,
	filter store.TaskFilter,
	page store.Page,
) ([]*domain.Task, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, filter, page)
	}
	return nil, 0, nil
}

// Update implements store.TaskStore.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return store.ErrTaskNotFound
}

// Delete implements store.TaskStore.
func (m *MockTaskStore) Delete(ctx context.Context, id, ownerID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, ownerID)
	}
	return store.ErrTaskNotFound
}

// ListAll implements store.TaskStore.
func (m *MockTaskStore) ListAll(ctx context.Context) ([]*domain.TaskWithOwner, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
