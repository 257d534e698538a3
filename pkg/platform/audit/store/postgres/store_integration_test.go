//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/pkg/platform/audit"
	"user-registry/pkg/testutil/containers"
)

func newAuditStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pg := containers.GetManager().GetPostgres(t)
	require.NoError(t, pg.TruncateAll(ctx))
	return New(pg.DB), ctx
}

func TestAuditStore_AppendAndList(t *testing.T) {
	s, ctx := newAuditStore(t)

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, action := range []string{audit.ActionUserCreated, audit.ActionUserPatched, audit.ActionUserDeleted} {
		require.NoError(t, s.Append(ctx, audit.Event{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Subject:   "123456782",
			Action:    action,
			Actor:     "svc-test",
			RequestID: "req-1",
		}))
	}
	require.NoError(t, s.Append(ctx, audit.Event{
		Timestamp: base,
		Subject:   "987654324",
		Action:    audit.ActionUserCreated,
	}))

	events, err := s.ListBySubject(ctx, "123456782")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, audit.ActionUserCreated, events[0].Action)
	assert.Equal(t, audit.ActionUserDeleted, events[2].Action)
	assert.Equal(t, "svc-test", events[0].Actor)
}

func TestAuditStore_ListUnknownSubjectIsEmpty(t *testing.T) {
	s, ctx := newAuditStore(t)

	events, err := s.ListBySubject(ctx, "123456782")
	require.NoError(t, err)
	assert.Empty(t, events)
}
