package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/api/internal/api/shared"
	"github.com/taskdeck/api/internal/domain"
)

func TestPrincipalRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, ok := shared.PrincipalFromContext(ctx)
	assert.False(t, ok)

	want := shared.Principal{UserID: 42, Role: domain.RoleAdmin}
	ctx = shared.WithPrincipal(ctx, want)

	got, ok := shared.PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestPrincipalIsRequestScoped(t *testing.T) {
	t.Parallel()

	base := context.Background()
	first := shared.WithPrincipal(base, shared.Principal{UserID: 1, Role: domain.RoleUser})
	second := shared.WithPrincipal(base, shared.Principal{UserID: 2, Role: domain.RoleAdmin})

	p1, _ := shared.PrincipalFromContext(first)
	p2, _ := shared.PrincipalFromContext(second)

	assert.Equal(t, int64(1), p1.UserID)
	assert.Equal(t, int64(2), p2.UserID)

	_, ok := shared.PrincipalFromContext(base)
	assert.False(t, ok)
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shared.GetTraceID(context.Background()))

	ctx := shared.SetTraceID(context.Background())
	traceID := shared.GetTraceID(ctx)
	assert.Len(t, traceID, shared.TraceIDLength*2)

	other := shared.SetTraceID(context.Background())
	assert.NotEqual(t, traceID, shared.GetTraceID(other))
}
