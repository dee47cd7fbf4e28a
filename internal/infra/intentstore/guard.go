package intentstore

import (
	"context"
	"log/slog"
	"time"

	"saba-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const inFlightPrefix = "booking:inflight:"

// releaseScript deletes the flag only while it still holds the caller's token,
// so an expired holder never clears a newer one.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Guard struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewGuard(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{client: client, ttl: ttl, logger: logger}
}

func (g *Guard) Acquire(ctx context.Context, key string) (func(context.Context), error) {
	redisKey := inFlightPrefix + key
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, redisKey, token, g.ttl).Result()
	if err != nil {
		return nil, infra.WrapErr(g.logger, infra.KindCacheFailure, "failed to acquire in-flight flag", err)
	}
	if !ok {
		return nil, infra.WrapErr(g.logger, infra.KindLocked, "submission already in flight", nil)
	}

	release := func(ctx context.Context) {
		if err := releaseScript.Run(ctx, g.client, []string{redisKey}, token).Err(); err != nil {
			g.logger.Warn("failed to release in-flight flag", "key", key, "error", err.Error())
		}
	}
	return release, nil
}
