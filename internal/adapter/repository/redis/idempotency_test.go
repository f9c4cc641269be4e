package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *IdempotencyStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewIdempotencyStore(client)
}

func TestIdempotencyStore_CheckAndSet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// First call locks the key.
	exists, cached, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, cached)

	// Second call sees the in-flight lock.
	exists, cached, err = store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []byte("processing"), cached)
}

func TestIdempotencyStore_Update(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)

	response := []byte(`{"id":1}`)
	require.NoError(t, store.Update(ctx, "key-1", response, time.Minute))

	exists, cached, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, response, cached)
}

func TestIdempotencyStore_DistinctKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	require.NoError(t, err)

	exists, _, err := store.CheckAndSet(ctx, "key-2", nil, time.Minute)
	require.NoError(t, err)
	assert.False(t, exists)
}
