package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/runcrewhq/crew-directory/internal/api/http"
	"github.com/runcrewhq/crew-directory/internal/api/http/handlers"
	"github.com/runcrewhq/crew-directory/internal/config"
	"github.com/runcrewhq/crew-directory/internal/events"
	"github.com/runcrewhq/crew-directory/internal/observability"
	"github.com/runcrewhq/crew-directory/internal/persistence"
	"github.com/runcrewhq/crew-directory/internal/repository"
	"github.com/runcrewhq/crew-directory/internal/service"
	"github.com/runcrewhq/crew-directory/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	crewRepo := repository.NewCrewRepository(pool)
	accountRepo := repository.NewCrewAccountRepository(pool)
	photoRepo := repository.NewPhotoRepository(pool)
	editRequestRepo := repository.NewEditRequestRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		AccountRepo: accountRepo,
	})
	crewService := service.NewCrewService(crewRepo, photoRepo, redis, cfg.Directory.CacheTTLSeconds, logger)
	editRequestService := service.NewEditRequestService(editRequestRepo, crewRepo, dispatcher)
	geocodeService := service.NewGeocodeService(cfg.Geocode, redis, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:         handlers.NewAuthHandler(authService, cfg.IsProduction()),
		Crews:        handlers.NewCrewHandler(crewService, geocodeService, authService),
		EditRequests: handlers.NewEditRequestHandler(editRequestService, authService),
		Pages:        handlers.NewPagesHandler(cfg.App.Name),
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
