package postgres

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/api/internal/domain"
	"github.com/taskdeck/api/internal/store"
)

func TestTaskListPredicate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		filter    store.TaskFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			filter:    store.TaskFilter{},
			wantWhere: "WHERE user_id = $1",
			wantArgs:  []any{int64(7)},
		},
		{
			name:      "status only",
			filter:    store.TaskFilter{Status: domain.TaskStatusPending},
			wantWhere: "WHERE user_id = $1 AND status = $2",
			wantArgs:  []any{int64(7), domain.TaskStatusPending},
		},
		{
			name:      "priority only",
			filter:    store.TaskFilter{Priority: domain.TaskPriorityHigh},
			wantWhere: "WHERE user_id = $1 AND priority = $2",
			wantArgs:  []any{int64(7), domain.TaskPriorityHigh},
		},
		{
			name: "status and priority keep distinct positions",
			filter: store.TaskFilter{
				Status:   domain.TaskStatusCompleted,
				Priority: domain.TaskPriorityLow,
			},
			wantWhere: "WHERE user_id = $1 AND status = $2 AND priority = $3",
			wantArgs:  []any{int64(7), domain.TaskStatusCompleted, domain.TaskPriorityLow},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			where, args := taskListPredicate(7, tc.filter)
			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

// The page query appends LIMIT and OFFSET after the predicate's
// placeholders; their positions must continue the numbering rather
// than collide with filter arguments.
func TestTaskListPaginationPlaceholders(t *testing.T) {
	t.Parallel()

	where, args := taskListPredicate(7, store.TaskFilter{
		Status:   domain.TaskStatusPending,
		Priority: domain.TaskPriorityMedium,
	})

	listQuery := fmt.Sprintf(
		"SELECT %s FROM tasks %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		taskColumns, where, len(args)+1, len(args)+2,
	)

	assert.Contains(t, listQuery, "LIMIT $4 OFFSET $5")
	assert.Contains(t, listQuery, "ORDER BY created_at DESC")
}
