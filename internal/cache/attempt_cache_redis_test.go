package cache

import (
	"animalquiz/internal/model"
	"animalquiz/internal/quiz"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T, ttl time.Duration) (AttemptCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewAttemptCache(client, ttl), mr
}

func TestRedisAttemptCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Hour)

	e := quiz.New(quiz.DefaultBank(), nil)
	require.NoError(t, e.Answer(model.CategoryFox))
	require.NoError(t, c.Set(ctx, "a1", e.Snapshot()))

	assert.True(t, mr.Exists("attempt:a1"))
	assert.Equal(t, time.Hour, mr.TTL("attempt:a1"))

	got, err := c.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, e.Snapshot(), got)

	require.NoError(t, c.Delete(ctx, "a1"))
	_, err = c.Get(ctx, "a1")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestRedisAttemptCacheMissing(t *testing.T) {
	c, _ := newRedisCache(t, time.Hour)

	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestRedisAttemptCacheRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Minute)

	e := quiz.New(quiz.DefaultBank(), nil)
	require.NoError(t, c.Set(ctx, "a1", e.Snapshot()))

	mr.FastForward(50 * time.Second)
	require.NoError(t, e.Answer(model.CategoryCat))
	require.NoError(t, c.Set(ctx, "a1", e.Snapshot()))
	assert.Equal(t, time.Minute, mr.TTL("attempt:a1"))

	mr.FastForward(50 * time.Second)
	got, err := c.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Answered)

	mr.FastForward(10 * time.Second)
	_, err = c.Get(ctx, "a1")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestRedisAttemptCacheCreate(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedisCache(t, time.Hour)

	first := quiz.New(quiz.DefaultBank(), nil)
	require.NoError(t, first.Answer(model.CategoryHamster))

	created, err := c.Create(ctx, "a1", first.Snapshot())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, time.Hour, mr.TTL("attempt:a1"))

	created, err = c.Create(ctx, "a1", quiz.New(quiz.DefaultBank(), nil).Snapshot())
	require.NoError(t, err)
	assert.False(t, created)

	got, err := c.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Answered)
}

func TestRedisAttemptCacheBadPayload(t *testing.T) {
	c, mr := newRedisCache(t, time.Hour)
	require.NoError(t, mr.Set("attempt:a1", "{not json"))

	_, err := c.Get(context.Background(), "a1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAttemptNotFound)
}
