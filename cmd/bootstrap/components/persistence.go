package components

import (
	"log/slog"

	"saba-booking/internal/infra/convstore"
	"saba-booking/internal/infra/db"
	"saba-booking/internal/infra/intentstore"
	"saba-booking/internal/infra/readstore"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/usecase/queries"
	"saba-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	redisStoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking ledger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingStore)),
		),
	),
)

var redisStoreModule = fx.Module("persistence/redis",
	fx.Provide(
		fx.Annotate(
			NewIntentStore,
			fx.As(new(shared.IntentStore)),
		),
		fx.Annotate(
			NewInFlightGuard,
			fx.As(new(shared.InFlightGuard)),
		),
		fx.Annotate(
			NewConversationStore,
			fx.As(new(shared.ConversationStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *db.Queries {
	return db.NewQueries()
}

func NewIntentStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *intentstore.Store {
	return intentstore.NewStore(client, cfg.Redis.IntentTTL, logger)
}

func NewInFlightGuard(client *redis.Client, cfg config.Config, logger *slog.Logger) *intentstore.Guard {
	return intentstore.NewGuard(client, cfg.Redis.InFlightTTL, logger)
}

func NewConversationStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *convstore.Store {
	return convstore.NewStore(client, cfg.Redis.ConversationTTL, cfg.Assistant.MaxHistory, logger)
}
