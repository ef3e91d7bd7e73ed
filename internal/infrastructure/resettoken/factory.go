package resettoken

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"zentrix-api/config"
	"zentrix-api/internal/application/ports"
)

// NewStore picks Redis when it is configured and reachable, memory otherwise.
// The returned client is nil for the memory store.
func NewStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (ports.ResetTokenStore, *redis.Client) {
	addr, ok := cfg.RedisAddr()
	if !ok {
		logger.Info("reset tokens kept in memory")
		return NewMemoryStore(cfg.Auth.ResetTokenTTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, reset tokens kept in memory", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return NewMemoryStore(cfg.Auth.ResetTokenTTL), nil
	}

	logger.Info("reset tokens kept in redis", zap.String("addr", addr))
	return NewRedisStore(client, cfg.Auth.ResetTokenTTL), client
}
