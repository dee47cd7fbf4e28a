package intentstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const intentPrefix = "booking:intent:"

var errVersionMismatch = errs.New("intent version mismatch")

// Store keeps booking intents as JSON documents with a sliding TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{client: client, ttl: ttl, logger: logger}
}

func intentKey(id uuid.UUID) string {
	return intentPrefix + id.String()
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*booking.Intent, error) {
	data, err := s.client.Get(ctx, intentKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapErr(s.logger, infra.KindNotFound, "booking intent not found", err)
	}
	if err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindCacheFailure, "failed to read booking intent", err)
	}

	var state booking.IntentState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, infra.WrapErr(s.logger, infra.KindDecode, "failed to decode booking intent", err)
	}
	return booking.ReconstructIntent(state), nil
}

// Save writes the intent only if the stored version still equals intent.Version().
// On success the intent carries the new version.
func (s *Store) Save(ctx context.Context, intent *booking.Intent) error {
	key := intentKey(intent.ID())
	expected := intent.Version()

	state := intent.State()
	state.Version = expected + 1
	payload, err := json.Marshal(state)
	if err != nil {
		return infra.WrapErr(s.logger, infra.KindDecode, "failed to encode booking intent", err)
	}

	txf := func(tx *redis.Tx) error {
		current, err := storedVersion(ctx, tx, key)
		if err != nil {
			return err
		}
		if current != expected {
			return errs.Wrapf(errVersionMismatch, "stored %d, have %d", current, expected)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}

	err = s.client.Watch(ctx, txf, key)
	switch {
	case err == nil:
		intent.SetPersistedVersion(state.Version)
		return nil
	case errors.Is(err, redis.TxFailedErr), errors.Is(err, errVersionMismatch):
		return infra.WrapErr(s.logger, infra.KindConflict, "booking intent was modified concurrently", err)
	default:
		return infra.WrapErr(s.logger, infra.KindCacheFailure, "failed to save booking intent", err)
	}
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, intentKey(id)).Err(); err != nil {
		return infra.WrapErr(s.logger, infra.KindCacheFailure, "failed to delete booking intent", err)
	}
	return nil
}

// storedVersion reads only the version of the stored document; a missing key is version 0.
func storedVersion(ctx context.Context, tx *redis.Tx, key string) (int64, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var head struct {
		Version int64
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return 0, err
	}
	return head.Version, nil
}
