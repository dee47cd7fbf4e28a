package components

import (
	"log/slog"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/usecase/assistant"
	"saba-booking/internal/usecase/commands"
	"saba-booking/internal/usecase/queries"
	"saba-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAssistantModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	catalog.Default,
	func(cat *catalog.Catalog, clk clock.Clock, cfg config.Config) *booking.Machine {
		return booking.NewMachine(cat, clk, booking.ReviewOptions{
			ComputeAddOns:    cfg.Flow.ComputeAddOns,
			ShowExistingCart: cfg.Flow.ShowExistingCart,
			AllowAddAnother:  cfg.Flow.AllowAddAnother,
		})
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewSessionSync,
		commands.NewGuidedUseCase,
		commands.NewBookingUseCase,
		commands.NewContactUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
	),
)

var usecaseAssistantModule = fx.Module("usecase/assistant",
	fx.Provide(
		assistant.NewTools,
		NewChat,
	),
)

func NewSessionSync(
	gateway shared.ReservationGateway,
	intents shared.IntentStore,
	cat *catalog.Catalog,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) commands.SessionSync {
	return commands.NewSessionSync(gateway, intents, cat, clk, cfg.Cookie.SessionMaxAge, logger)
}

func NewChat(
	model shared.AssistantModel,
	tools assistant.Tools,
	store shared.ConversationStore,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) assistant.Chat {
	return assistant.NewChat(model, tools, store, cfg.Assistant.MaxSteps, clk, logger)
}
