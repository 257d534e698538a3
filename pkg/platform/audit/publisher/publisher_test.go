package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "user-registry/pkg/platform/audit"
	auditmem "user-registry/pkg/platform/audit/store/memory"
)

func TestEmit_Sync(t *testing.T) {
	store := auditmem.NewInMemoryStore()
	pub := NewPublisher(store)

	event := audit.Event{
		Timestamp: time.Now(),
		Subject:   "123456782",
		Action:    audit.ActionUserCreated,
		Actor:     "qa-suite",
	}
	require.NoError(t, pub.Emit(context.Background(), event))

	events, err := store.ListBySubject(context.Background(), "123456782")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionUserCreated, events[0].Action)
}

func TestEmit_AsyncDrainsOnClose(t *testing.T) {
	store := auditmem.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(16))

	for i := 0; i < 10; i++ {
		require.NoError(t, pub.Emit(context.Background(), audit.Event{
			Timestamp: time.Now(),
			Subject:   "123456782",
			Action:    audit.ActionUserPatched,
		}))
	}
	pub.Close()

	events, err := store.ListBySubject(context.Background(), "123456782")
	require.NoError(t, err)
	assert.Len(t, events, 10)
}

func TestEmit_AfterCloseDropsEvent(t *testing.T) {
	store := auditmem.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(16))
	pub.Close()

	require.NotPanics(t, func() {
		assert.NoError(t, pub.Emit(context.Background(), audit.Event{
			Timestamp: time.Now(),
			Subject:   "123456782",
			Action:    audit.ActionUserDeleted,
		}))
	})

	events, err := store.ListBySubject(context.Background(), "123456782")
	require.NoError(t, err)
	assert.Empty(t, events)

	// Close is idempotent.
	require.NotPanics(t, pub.Close)
}
