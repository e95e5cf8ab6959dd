package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, ttl), mr
}

func TestStore_CreateAndResolve(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	userID := uuid.New()
	token, err := store.Create(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, resolved)
}

func TestStore_ResolveUnknownToken(t *testing.T) {
	store, _ := setupStore(t, time.Hour)

	_, err := store.Resolve(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Destroy(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Expiry(t *testing.T) {
	store, mr := setupStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ResolveRefreshesTTL(t *testing.T) {
	store, mr := setupStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	// Touch the session halfway through its lifetime, then advance past
	// the original deadline. The session must still be alive.
	mr.FastForward(30 * time.Second)
	_, err = store.Resolve(ctx, token)
	require.NoError(t, err)

	mr.FastForward(45 * time.Second)
	_, err = store.Resolve(ctx, token)
	assert.NoError(t, err)
}
