package bootstrap

import (
	"context"
	"log/slog"

	infraassistant "saba-booking/internal/infra/assistant"
	"saba-booking/internal/infra/reservation"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewReservationGateway,
			fx.As(new(shared.ReservationGateway)),
		),
		NewAssistantModel,
	),
)

func NewReservationGateway(cfg config.Config, logger *slog.Logger) *reservation.Client {
	return reservation.NewClient(cfg.Reservation, logger)
}

// NewAssistantModel returns a nil model when no API key is configured.
func NewAssistantModel(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.AssistantModel, error) {
	model, err := infraassistant.NewGeminiModel(context.Background(), cfg.Assistant, logger)
	if err != nil {
		return nil, err
	}
	if model == nil {
		logger.Warn("assistant disabled: ASSISTANT_API_KEY is not set")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return model.Close()
		},
	})

	return model, nil
}
