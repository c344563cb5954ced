package booking

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisDraftRepository_RoundTrip(t *testing.T) {
	repo := NewRedisDraftRepository(testRedis(t))
	ctx := context.Background()

	form := validForm()
	require.NoError(t, repo.Save(ctx, "user-1", form))

	loaded, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, form, *loaded)
}

func TestRedisDraftRepository_MissingDraftIsNil(t *testing.T) {
	repo := NewRedisDraftRepository(testRedis(t))

	loaded, err := repo.Get(context.Background(), "user-without-draft")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisDraftRepository_ClearRemovesDraft(t *testing.T) {
	repo := NewRedisDraftRepository(testRedis(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "user-1", validForm()))
	require.NoError(t, repo.Clear(ctx, "user-1"))

	loaded, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisDraftRepository_CorruptDraftDropped(t *testing.T) {
	client := testRedis(t)
	repo := NewRedisDraftRepository(client)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, DraftKeyPrefix+"user-1", "{not json", 0).Err())

	loaded, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// The corrupt payload must be gone so the wizard starts clean.
	exists, err := client.Exists(ctx, DraftKeyPrefix+"user-1").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestRedisDraftRepository_DraftsScopedPerUser(t *testing.T) {
	repo := NewRedisDraftRepository(testRedis(t))
	ctx := context.Background()

	formA := validForm()
	formB := validForm()
	formB.Address = "500 Elm Street"
	require.NoError(t, repo.Save(ctx, "user-a", formA))
	require.NoError(t, repo.Save(ctx, "user-b", formB))

	loaded, err := repo.Get(ctx, "user-b")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "500 Elm Street", loaded.Address)
}
