package resettoken

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/domain/resettoken"
)

const keyPrefix = "zentrix:reset:"

var _ ports.ResetTokenStore = (*RedisStore)(nil)

// RedisStore keeps each entry under a key living twice the token TTL, so a
// token looked up after expiry still resolves and is reported as expired.
type RedisStore struct {
	client *redis.Client
	keyTTL time.Duration
}

func NewRedisStore(client *redis.Client, tokenTTL time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		keyTTL: 2 * tokenTTL,
	}
}

func (s *RedisStore) key(token string) string { return keyPrefix + token }

func (s *RedisStore) Save(ctx context.Context, token string, e resettoken.Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err = s.client.Set(ctx, s.key(token), b, s.keyTTL).Err(); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

func (s *RedisStore) Lookup(ctx context.Context, token string) (*resettoken.Entry, error) {
	b, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read reset token: %w", err)
	}

	var e resettoken.Entry
	if err = json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("corrupt reset token entry: %w", err)
	}
	return &e, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Del(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete reset token: %w", err)
	}
	return n > 0, nil
}
