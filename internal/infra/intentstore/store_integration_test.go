//go:build integration

package intentstore_test

import (
	"context"
	"testing"
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/infra"
	"saba-booking/internal/infra/intentstore"
	"saba-booking/tests/common/builder"
	"saba-booking/tests/common/containers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type IntentStoreSuite struct {
	suite.Suite
	store *intentstore.Store
	guard *intentstore.Guard
}

func TestIntentStoreSuite(t *testing.T) {
	suite.Run(t, new(IntentStoreSuite))
}

func (s *IntentStoreSuite) SetupTest() {
	client, cfg := containers.Redis(s.T())
	s.store = intentstore.NewStore(client, cfg.IntentTTL, nil)
	s.guard = intentstore.NewGuard(client, cfg.InFlightTTL, nil)
}

func (s *IntentStoreSuite) TestSaveAndGet() {
	ctx := context.Background()
	intent := builder.NewIntentBuilder().AtReview().With(func(b *builder.IntentBuilder) { b.Version = 0 }).Build()

	require.NoError(s.T(), s.store.Save(ctx, intent))
	assert.Equal(s.T(), int64(1), intent.Version())

	got, err := s.store.Get(ctx, intent.ID())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), intent.State(), got.State())
}

func (s *IntentStoreSuite) TestSave_StaleVersionConflicts() {
	ctx := context.Background()
	intent := builder.NewIntentBuilder().With(func(b *builder.IntentBuilder) { b.Version = 0 }).Build()
	require.NoError(s.T(), s.store.Save(ctx, intent))

	first, err := s.store.Get(ctx, intent.ID())
	require.NoError(s.T(), err)
	second, err := s.store.Get(ctx, intent.ID())
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.store.Save(ctx, first))

	err = s.store.Save(ctx, second)
	require.Error(s.T(), err)
	assert.True(s.T(), infra.IsKind(err, infra.KindConflict), "got %v", err)
}

func (s *IntentStoreSuite) TestGet_Missing() {
	_, err := s.store.Get(context.Background(), uuid.New())
	assert.True(s.T(), infra.IsKind(err, infra.KindNotFound), "got %v", err)
}

func (s *IntentStoreSuite) TestDelete() {
	ctx := context.Background()
	intent := booking.NewIntent(uuid.New(), time.Now())
	require.NoError(s.T(), s.store.Save(ctx, intent))
	require.NoError(s.T(), s.store.Delete(ctx, intent.ID()))

	_, err := s.store.Get(ctx, intent.ID())
	assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
}

func (s *IntentStoreSuite) TestGuard_RejectsSecondHolder() {
	ctx := context.Background()

	release, err := s.guard.Acquire(ctx, "checkout:abc")
	require.NoError(s.T(), err)

	_, err = s.guard.Acquire(ctx, "checkout:abc")
	assert.True(s.T(), infra.IsKind(err, infra.KindLocked), "got %v", err)

	release(ctx)

	again, err := s.guard.Acquire(ctx, "checkout:abc")
	require.NoError(s.T(), err)
	again(ctx)
}
