package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/facility-console/internal/api/http"
	"github.com/spec-kit/facility-console/internal/api/http/handlers"
	"github.com/spec-kit/facility-console/internal/config"
	"github.com/spec-kit/facility-console/internal/events"
	"github.com/spec-kit/facility-console/internal/observability"
	"github.com/spec-kit/facility-console/internal/persistence"
	"github.com/spec-kit/facility-console/internal/session"
	"github.com/spec-kit/facility-console/internal/upstream"
	"github.com/spec-kit/facility-console/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	store := session.NewRedisStore(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartSessionAudit(dispatcher, logger.Named("audit"))

	client := upstream.NewClient(cfg.Upstream, upstream.Dependencies{
		Tokens:  store,
		Logger:  logger.Named("upstream"),
		Metrics: metrics,
		Events:  dispatcher,
	})

	authAPI := upstream.NewAuthAPI(client)
	sessions := session.NewManager(store, authAPI, logger.Named("session"), dispatcher)
	guard := session.NewGuard(sessions, logger.Named("guard"))

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, metrics),
		Auth:         handlers.NewAuthHandler(sessions),
		Reports:      handlers.NewReportsHandler(upstream.NewReportsAPI(client)),
		Warehouse:    handlers.NewWarehouseHandler(upstream.NewWarehouseAPI(client)),
		Purchases:    handlers.NewPurchasesHandler(upstream.NewPurchasesAPI(client)),
		Dental:       handlers.NewDentalHandler(upstream.NewDentalAPI(client)),
		Facilities:   handlers.NewFacilitiesHandler(upstream.NewFacilitiesAPI(client)),
		Suppliers:    handlers.NewSuppliersHandler(upstream.NewSuppliersAPI(client)),
		Transactions: handlers.NewTransactionsHandler(upstream.NewTransactionsAPI(client)),
		Staff:        handlers.NewStaffHandler(upstream.NewStaffAPI(client)),
		Guard:        guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
