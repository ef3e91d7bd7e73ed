package resettoken

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zentrix-api/config"
	"zentrix-api/internal/domain/resettoken"
)

func newRedisStore(t *testing.T, tokenTTL time.Duration) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisStore(client, tokenTTL)
}

func TestRedisStore_SaveLookupDelete(t *testing.T) {
	ctx := context.Background()
	mr, s := newRedisStore(t, time.Hour)
	exp := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, "tok", resettoken.Entry{UserID: 7, ExpiresAt: exp}))
	assert.Equal(t, 2*time.Hour, mr.TTL(keyPrefix+"tok"))

	e, err := s.Lookup(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.EqualValues(t, 7, e.UserID)
	assert.True(t, exp.Equal(e.ExpiresAt))

	missing, err := s.Lookup(ctx, "other")
	require.NoError(t, err)
	assert.Nil(t, missing)

	ok, err := s.Delete(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok, "second delete reports absence")

	gone, err := s.Lookup(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRedisStore_ExpiredTokenStillResolves(t *testing.T) {
	ctx := context.Background()
	mr, s := newRedisStore(t, time.Hour)
	issued := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, "tok", resettoken.Entry{UserID: 7, ExpiresAt: issued.Add(time.Hour)}))

	// past the token TTL, inside the key TTL
	mr.FastForward(90 * time.Minute)
	e, err := s.Lookup(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.True(t, e.Expired(issued.Add(90*time.Minute)))

	// past the key TTL the token is unknown
	mr.FastForward(time.Hour)
	e, err = s.Lookup(ctx, "tok")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestRedisStore_CorruptEntry(t *testing.T) {
	mr, s := newRedisStore(t, time.Hour)
	require.NoError(t, mr.Set(keyPrefix+"tok", "not-json"))

	e, err := s.Lookup(context.Background(), "tok")
	require.Error(t, err)
	assert.Nil(t, e)
}

func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	mr, s := newRedisStore(t, time.Hour)
	mr.Close()

	require.Error(t, s.Save(ctx, "tok", resettoken.Entry{UserID: 7}))

	_, err := s.Lookup(ctx, "tok")
	require.Error(t, err)

	_, err = s.Delete(ctx, "tok")
	require.Error(t, err)
}

func TestNewStore_PicksRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Config{
		Redis: config.Redis{Host: mr.Host(), Port: mr.Port()},
		Auth:  config.Auth{ResetTokenTTL: time.Hour},
	}

	store, client := NewStore(context.Background(), cfg, zap.NewNop())
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })
	assert.IsType(t, &RedisStore{}, store)
}
