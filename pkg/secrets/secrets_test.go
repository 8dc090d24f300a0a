package secrets

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(client)
}

func TestStore_GetSet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "jwt_signing_key")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Set(ctx, "jwt_signing_key", "super-secret")
	assert.NoError(t, err)

	val, err := store.Get(ctx, "jwt_signing_key")
	assert.NoError(t, err)
	assert.Equal(t, "super-secret", val)
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	names, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, names)

	assert.NoError(t, store.Set(ctx, "jwt_signing_key", "a"))
	assert.NoError(t, store.Set(ctx, "webhook_token", "b"))

	names, err = store.List(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"jwt_signing_key", "webhook_token"}, names)
}
