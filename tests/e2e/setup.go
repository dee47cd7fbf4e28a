//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"saba-booking/cmd/bootstrap"
	"saba-booking/cmd/bootstrap/components"
	"saba-booking/internal/pkg/config"
	"saba-booking/tests/common/containers"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// per-process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, slips map[string]FakeSlip) (*pgxpool.Pool, *gin.Engine, config.Config, *FakeReservationAPI) {
	gin.SetMode(gin.TestMode)

	pool, dbConfig := containers.Postgres(t)
	redisClient, redisConfig := containers.Redis(t)
	api := NewFakeReservationAPI(t, slips)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Redis = redisConfig
	cfg.Reservation.BaseURL = api.Server.URL

	router, app := buildE2EApp(pool, redisClient, cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return pool, router, cfg, api
}

// ------------------------------------------------------------
// builds the app from the production modules with test infrastructure
// ------------------------------------------------------------
func buildE2EApp(pool *pgxpool.Pool, redisClient *redis.Client, cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testInfraModule := fx.Module("testinfra",
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *redis.Client { return redisClient },
			func() config.Config { return cfg },
		),
	)

	app := fx.New(
		testInfraModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.ResumeModule,
		bootstrap.GatewayModule,
		components.PersistenceModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, app
}

// ------------------------------------------------------------
// shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	API    *FakeReservationAPI
	Slips  map[string]FakeSlip
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	db, router, cfg, api := setupE2EEnvironment(t, s.Slips)
	s.DB = db
	s.Router = router
	s.Config = cfg
	s.API = api
	require.NotNil(t, db, "DB setup failed")
	require.NotNil(t, s.Router, "router setup failed")
}
