package convstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"saba-booking/internal/infra"
	"saba-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const conversationPrefix = "assistant:conv:"

// Store keeps assistant conversations as a Redis list of JSON turns, trimmed to
// the most recent maxTurns entries.
type Store struct {
	client   *redis.Client
	ttl      time.Duration
	maxTurns int64
	logger   *slog.Logger
}

func NewStore(client *redis.Client, ttl time.Duration, maxTurns int, logger *slog.Logger) *Store {
	return &Store{client: client, ttl: ttl, maxTurns: int64(maxTurns), logger: logger}
}

func conversationKey(id uuid.UUID) string {
	return conversationPrefix + id.String()
}

// Load returns an empty history for unknown conversations.
func (s *Store) Load(ctx context.Context, id uuid.UUID) ([]shared.ChatTurn, error) {
	raw, err := s.client.LRange(ctx, conversationKey(id), 0, -1).Result()
	if err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindCacheFailure, "failed to load conversation", err)
	}

	turns := make([]shared.ChatTurn, 0, len(raw))
	for _, r := range raw {
		var t shared.ChatTurn
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			return nil, infra.WrapErr(s.logger, infra.KindDecode, "failed to decode conversation turn", err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (s *Store) Append(ctx context.Context, id uuid.UUID, turns ...shared.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]any, 0, len(turns))
	for _, t := range turns {
		b, err := json.Marshal(t)
		if err != nil {
			return infra.WrapErr(s.logger, infra.KindDecode, "failed to encode conversation turn", err)
		}
		values = append(values, b)
	}

	key := conversationKey(id)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		if s.maxTurns > 0 {
			pipe.LTrim(ctx, key, -s.maxTurns, -1)
		}
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindCacheFailure, "failed to append conversation", err)
	}
	return nil
}
