package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-api/pkg/circuitbreaker"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSessionStore(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()
	loginAt := time.Unix(1714000000, 0)

	require.NoError(t, store.SaveSession(ctx, Session{
		MemberID: 3,
		Email:    "reader@example.com",
		Role:     "MEMBER",
		IP:       "10.0.0.1",
		LoginAt:  loginAt,
	}, 7*24*time.Hour))

	assert.Equal(t, 7*24*time.Hour, mr.TTL("session:3"))

	sess, err := store.GetSession(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sess.Email)
	assert.Equal(t, "10.0.0.1", sess.IP)
	assert.True(t, sess.LoginAt.Equal(loginAt))

	require.NoError(t, store.DeleteSession(ctx, 3))
	_, err = store.GetSession(ctx, 3)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestSessionStore_Blacklist(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	revoked, err := store.IsInBlacklist(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.AddToBlacklist(ctx, "tok", 2*time.Hour))
	revoked, err = store.IsInBlacklist(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2*time.Hour + time.Second)
	revoked, err = store.IsInBlacklist(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *ResponseCache) {
	mr, client := newTestClient(t)
	cache := NewResponseCache(client, config.CacheConfig{
		Enabled:          true,
		TTL:              time.Hour,
		KeyPrefix:        "cache",
		BreakerFailures:  2,
		BreakerOpenDelay: time.Minute,
	})
	return mr, cache
}

func TestResponseCache_Key(t *testing.T) {
	_, cache := newTestCache(t)

	assert.Equal(t, "cache:books:/bookstore/books?page=1&sort=price,desc",
		cache.Key("books", "/bookstore/books", "page=1&sort=price,desc"))
	assert.Equal(t, "cache:books:/bookstore/books/1", cache.Key("books", "/bookstore/books/1", ""))
}

func TestResponseCache_GetSet(t *testing.T) {
	mr, cache := newTestCache(t)
	ctx := context.Background()
	key := cache.Key("books", "/bookstore/books/1", "")

	_, hit, err := cache.Get(ctx, "books", key)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, key, []byte(`{"id":1}`)))
	assert.Equal(t, time.Hour, mr.TTL(key))

	value, hit, err := cache.Get(ctx, "books", key)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.JSONEq(t, `{"id":1}`, string(value))

	// null与空值不缓存
	require.NoError(t, cache.Set(ctx, "cache:books:null", []byte("null")))
	require.NoError(t, cache.Set(ctx, "cache:books:empty", nil))
	assert.False(t, mr.Exists("cache:books:null"))
	assert.False(t, mr.Exists("cache:books:empty"))
}

func TestResponseCache_EvictNamespace(t *testing.T) {
	mr, cache := newTestCache(t)
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		require.NoError(t, cache.Set(ctx, cache.Key("books", "/bookstore/books", "page="+strconv.Itoa(i)), []byte("{}")))
	}
	require.NoError(t, cache.Set(ctx, cache.Key("tags", "/tags/1/books", ""), []byte("{}")))

	n, err := cache.EvictNamespace(ctx, "books")
	require.NoError(t, err)
	assert.Equal(t, 250, n)

	assert.Equal(t, []string{"cache:tags:/tags/1/books"}, mr.Keys())
}

func TestResponseCache_BreakerOpensWhenRedisDown(t *testing.T) {
	mr, cache := newTestCache(t)
	ctx := context.Background()
	mr.Close()

	for i := 0; i < 2; i++ {
		_, hit, err := cache.Get(ctx, "books", "cache:books:/x")
		assert.Error(t, err)
		assert.False(t, hit)
	}
	assert.Equal(t, circuitbreaker.StateOpen, cache.BreakerState())

	_, _, err := cache.Get(ctx, "books", "cache:books:/x")
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.ErrorIs(t, cache.Set(ctx, "cache:books:/x", []byte("{}")), circuitbreaker.ErrOpenState)
}

func TestResponseCache_MissDoesNotTrip(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, hit, err := cache.Get(ctx, "books", "cache:books:/missing")
		require.NoError(t, err)
		assert.False(t, hit)
	}
	assert.Equal(t, circuitbreaker.StateClosed, cache.BreakerState())
}
