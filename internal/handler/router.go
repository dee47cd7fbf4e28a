package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"saba-booking/internal/handler/api"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog   *api.CatalogHandler
	Cart      *api.CartHandler
	Guided    *api.GuidedHandler
	Booking   *api.BookingHandler
	Contact   *api.ContactHandler
	Assistant *api.AssistantHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, session *middleware.SessionMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, session, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, session *middleware.SessionMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(limiter.Middleware(), session.ResolveSession())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.Categories},
			{Method: http.MethodGet, Path: "/items", Handler: h.Catalog.Items},
			{Method: http.MethodGet, Path: "/items/:id", Handler: h.Catalog.Item},
			{Method: http.MethodGet, Path: "/items/:id/calendar", Handler: h.Catalog.Calendar},
			{Method: http.MethodGet, Path: "/booking/form", Handler: h.Catalog.BookingForm},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.Get},
			{Method: http.MethodDelete, Path: "/cart/units/:token", Handler: h.Cart.RemoveUnit},
			{Method: http.MethodPost, Path: "/cart/clear", Handler: h.Cart.Clear},
			{Method: http.MethodPost, Path: "/cart/share", Handler: h.Cart.Share},
			{Method: http.MethodPost, Path: "/session", Handler: h.Cart.Session},
		})

		guided := apiGroup.Group("/guided")
		{
			addRoutes(guided, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Guided.Start},
				{Method: http.MethodGet, Path: "", Handler: h.Guided.Get},
				{Method: http.MethodPatch, Path: "", Handler: h.Guided.Update},
				{Method: http.MethodPost, Path: "/advance", Handler: h.Guided.Advance},
				{Method: http.MethodPost, Path: "/retreat", Handler: h.Guided.Retreat},
				{Method: http.MethodPost, Path: "/reset", Handler: h.Guided.Reset},
				{Method: http.MethodPost, Path: "/certification", Handler: h.Guided.ConfirmCertification},
				{Method: http.MethodPost, Path: "/alternative", Handler: h.Guided.SwitchToAlternative},
				{Method: http.MethodPost, Path: "/rate", Handler: h.Guided.Rate},
				{Method: http.MethodPost, Path: "/cart", Handler: h.Guided.AddToCart},
				{Method: http.MethodPost, Path: "/another", Handler: h.Guided.AddAnother},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Guided.Checkout},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/booking/create", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/bookings/:bookingId", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
		})

		assistant := apiGroup.Group("/assistant")
		{
			addRoutes(assistant, []route{
				{Method: http.MethodGet, Path: "/tools", Handler: h.Assistant.ListTools},
				{Method: http.MethodPost, Path: "/tools/:name", Handler: h.Assistant.InvokeTool},
				{Method: http.MethodPost, Path: "/chat", Handler: h.Assistant.Chat},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
