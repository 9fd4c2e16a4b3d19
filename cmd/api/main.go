package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/constituent-office/internal/api/http"
	"github.com/spec-kit/constituent-office/internal/api/http/handlers"
	"github.com/spec-kit/constituent-office/internal/assistant"
	"github.com/spec-kit/constituent-office/internal/auth"
	"github.com/spec-kit/constituent-office/internal/config"
	"github.com/spec-kit/constituent-office/internal/events"
	"github.com/spec-kit/constituent-office/internal/observability"
	"github.com/spec-kit/constituent-office/internal/persistence"
	"github.com/spec-kit/constituent-office/internal/repository"
	"github.com/spec-kit/constituent-office/internal/service"
	"github.com/spec-kit/constituent-office/internal/worker"
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
	actorRepo := repository.NewActorRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	teamMessageRepo := repository.NewTeamMessageRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	assistantClient := assistant.New(cfg.Assistant, logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authService := service.NewAuthService(service.AuthDependencies{
		ActorRepo:  actorRepo,
		Tokens:     tokens,
		Dispatcher: dispatcher,
		BcryptCost: cfg.Auth.BcryptCost,
	})
	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo: complaintRepo,
		Assistant:     assistantClient,
		Dispatcher:    dispatcher,
	})
	reportService := service.NewReportService(complaintRepo)
	teamChatService := service.NewTeamChatService(teamMessageRepo, actorRepo, dispatcher)
	directoryService := service.NewDirectoryService(actorRepo, cfg.Auth.BcryptCost)
	notificationService := service.NewNotificationService(redis.Client, cfg.Notification.RedisChannel, logger)

	worker.StartNotificationWorker(notificationService, dispatcher)

	authMiddleware := auth.NewAuthMiddleware(tokens, actorRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Complaints:     handlers.NewComplaintsHandler(complaintService),
		Reports:        handlers.NewReportsHandler(reportService),
		TeamChat:       handlers.NewTeamChatHandler(teamChatService),
		Directory:      handlers.NewDirectoryHandler(directoryService),
		AuthMiddleware: authMiddleware,
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
