package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"club-coordination-backend/internal/api/routes"
	"club-coordination-backend/internal/auth"
	"club-coordination-backend/internal/config"
	"club-coordination-backend/internal/database"
	"club-coordination-backend/internal/jobs"
	"club-coordination-backend/internal/logger"
	"club-coordination-backend/internal/notification"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository"
	"club-coordination-backend/internal/repository/memory"
	"club-coordination-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "club-coordination-backend/docs" // This is needed for swag
)

//	@title			Club Coordination Backend API
//	@version		1.0
//	@description	Campus club membership, event team formation and team discussion.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	log := logger.New()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize store")
	}

	resolver, err := buildResolver(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to build role registry")
	}

	dispatcher, notifier := buildDispatcher(cfg, log)

	services := service.New(store, resolver, dispatcher, service.Options{
		MaxAttempts:             cfg.TxMaxRetries,
		EnforcePromotionCeiling: cfg.EnforcePromotionCeiling,
	})

	authService, err := auth.NewAuthService(cfg.JWTSecret, 0)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}

	reconciler := jobs.NewReconciler(cfg.ReconcileSchedule, store.Clubs, store.Teams)
	if err := reconciler.Start(); err != nil {
		log.WithError(err).Fatal("Failed to schedule counter reconciliation")
	}
	defer reconciler.Stop()

	router := routes.SetupRoutes(routes.Dependencies{
		Config:   cfg,
		Services: services,
		Auth:     authService,
		Store:    store.Pinger,
		Notifier: notifier,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}

// openStore selects the Postgres or in-process store
func openStore(cfg *config.Config) (*repository.Store, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.New().Warn("Using the in-process store; data is lost on restart")
		return memory.NewStore().Repositories(), nil
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return nil, err
	}
	return repository.NewStore(db), nil
}

// buildResolver applies the configured thresholds, then the optional policy file on top
func buildResolver(cfg *config.Config) (*rbac.Resolver, error) {
	policy, err := rbac.LoadPolicy(cfg.RolePolicyFile)
	if err != nil {
		return nil, err
	}

	opts := []rbac.Option{
		rbac.WithCapabilityMinPriority(rbac.CapManageMembers, cfg.ApproveMinPriority),
		rbac.WithCapabilityMinPriority(rbac.CapPromoteMembers, cfg.PromoteMinPriority),
	}
	registry, err := rbac.NewRegistry(append(opts, policy.Options()...)...)
	if err != nil {
		return nil, err
	}
	return rbac.NewResolver(registry), nil
}

// buildDispatcher always logs events and also publishes them when Redis is configured.
// The returned notifier is nil without Redis.
func buildDispatcher(cfg *config.Config, log *logger.Logger) (notification.Dispatcher, repository.Pinger) {
	logDispatcher := notification.NewLogDispatcher()
	if cfg.RedisURL == "" {
		return logDispatcher, nil
	}

	client, err := notification.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, events will only be logged")
		return logDispatcher, nil
	}

	redisDispatcher := notification.NewRedisDispatcher(client, cfg.NotificationChannel)
	return notification.NewMultiDispatcher(logDispatcher, redisDispatcher), redisDispatcher
}
