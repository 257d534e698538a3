//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/pkg/platform/sentinel"
	"user-registry/pkg/testutil"
	"user-registry/pkg/testutil/containers"
)

func newRedisCache(t *testing.T) (*RedisCache, context.Context) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc := containers.GetManager().GetRedis(t)
	require.NoError(t, rc.FlushAll(ctx))
	return NewRedisCache(rc.Client, 5*time.Minute), ctx
}

func TestRedisCache_SaveAndFind(t *testing.T) {
	c, ctx := newRedisCache(t)

	u := testutil.NewTestUser(t)
	require.NoError(t, c.Save(ctx, u))

	got, err := c.Find(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestRedisCache_MissReturnsNotFound(t *testing.T) {
	c, ctx := newRedisCache(t)

	_, err := c.Find(ctx, "123456782")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestRedisCache_Invalidate(t *testing.T) {
	c, ctx := newRedisCache(t)

	u := testutil.NewTestUser(t)
	require.NoError(t, c.Save(ctx, u))
	require.NoError(t, c.Invalidate(ctx, u.ID))

	_, err := c.Find(ctx, u.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestRedisCache_Expiry(t *testing.T) {
	_, ctx := newRedisCache(t)
	rc := containers.GetManager().GetRedis(t)
	c := NewRedisCache(rc.Client, time.Second)

	u := testutil.NewTestUser(t)
	require.NoError(t, c.Save(ctx, u))

	require.Eventually(t, func() bool {
		_, err := c.Find(ctx, u.ID)
		return err != nil
	}, 5*time.Second, 200*time.Millisecond)
}
