package store

import (
	"context"

	"github.com/taskdeck/api/internal/domain"
)

// Pagination defaults for task listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// TaskFilter narrows a task listing to exact status and/or priority
// matches. Zero values mean "no filter".
type TaskFilter struct {
	Status   domain.TaskStatus
	Priority domain.TaskPriority
}

// Page describes one page of a listing.
type Page struct {
	Number int // 1-based page number
	Size   int // maximum items per page
}

// Normalize returns a copy of the page with defaults applied for
// out-of-range values.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset returns the row offset of the page's first item.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TaskStore defines the interface for task data persistence.
//
// Every operation except ListAll is scoped by an owner ID: the ownership
// predicate is baked into the query itself rather than checked by the
// caller, so a task owned by someone else is indistinguishable from a
// nonexistent one.
type TaskStore interface {
	// Create saves a new task and assigns its ID and timestamps.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves the task with the given ID owned by ownerID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	GetByID(ctx context.Context, id, ownerID int64) (*domain.Task, error)

	// List returns one page of the owner's tasks matching the filter,
	// newest first, along with the total number of matching tasks
	// independent of pagination.
	List(ctx context.Context, ownerID int64, filter TaskFilter, page Page) ([]*domain.Task, int, error)

	// Update replaces the title, description, status and priority of the
	// task with the given ID and owner, and refreshes its update
	// timestamp. The check and write are a single conditional statement,
	// so there is no window between the ownership check and the write.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID owned by ownerID.
	// Returns ErrTaskNotFound if no matching row existed to delete.
	Delete(ctx context.Context, id, ownerID int64) error

	// ListAll returns every task across all owners, newest first, each
	// augmented with its owner's username and email. Callers must gate
	// this behind an admin role check.
	ListAll(ctx context.Context) ([]*domain.TaskWithOwner, error)
}
