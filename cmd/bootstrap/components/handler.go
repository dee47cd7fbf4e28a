package components

import (
	"log/slog"

	"saba-booking/internal/handler"
	"saba-booking/internal/handler/api"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/jwt"
	"saba-booking/internal/usecase/assistant"
	"saba-booking/internal/usecase/commands"
	"saba-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewContactHandler,
		func(sessions commands.SessionSync, resume *jwt.Service, cfg config.Config) *api.CartHandler {
			return api.NewCartHandler(sessions, resume, cfg.Cookie, cfg.Resume)
		},
		func(cmds commands.GuidedCommands, cfg config.Config) *api.GuidedHandler {
			return api.NewGuidedHandler(cmds, cfg.Cookie)
		},
		func(cmds commands.BookingCommands, q queries.BookingQueries, cfg config.Config) *api.BookingHandler {
			return api.NewBookingHandler(cmds, q, cfg.Cookie)
		},
		func(tools assistant.Tools, chat assistant.Chat, cfg config.Config) *api.AssistantHandler {
			return api.NewAssistantHandler(tools, chat, cfg.Cookie)
		},
		middleware.NewSessionMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(NewRouter),
)

type routerParams struct {
	fx.In

	Engine    *gin.Engine
	Config    config.Config
	Logger    *slog.Logger
	Catalog   *api.CatalogHandler
	Cart      *api.CartHandler
	Guided    *api.GuidedHandler
	Booking   *api.BookingHandler
	Contact   *api.ContactHandler
	Assistant *api.AssistantHandler
	Session   *middleware.SessionMiddleware
	Limiter   *middleware.RateLimiter
}

func NewRouter(p routerParams) {
	handler.NewRouter(p.Engine, p.Config, p.Logger, handler.Handlers{
		Catalog:   p.Catalog,
		Cart:      p.Cart,
		Guided:    p.Guided,
		Booking:   p.Booking,
		Contact:   p.Contact,
		Assistant: p.Assistant,
	}, p.Session, p.Limiter)
}
