package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/smatech/auth-service/internal/api"
	"github.com/smatech/auth-service/internal/core/password"
	"github.com/smatech/auth-service/internal/core/service"
	"github.com/smatech/auth-service/internal/infrastructure/bootstrap"
	"github.com/smatech/auth-service/internal/infrastructure/config"
	mongodb "github.com/smatech/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/smatech/auth-service/internal/infrastructure/db/redis"
	"github.com/smatech/auth-service/internal/infrastructure/queue"
	"github.com/smatech/auth-service/pkg/logger"
)

func main() {
	// A local .env complements the environment; absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Persistence ---
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	auditRepo := mongodb.NewAuditRepository(db)
	listingCache := redisdb.NewListingCache(rdb)

	// --- Core services ---
	hasher := password.NewHasher(bcrypt.DefaultCost)
	tokens := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)

	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	authService := service.NewAuthService(userRepo, hasher, tokens, listingCache, dispatcher, log)

	// One-time startup side effect, not per-request logic.
	if err := bootstrap.EnsureDefaultAdmin(ctx, userRepo, hasher, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("default admin seeding failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(authService, tokens, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("auth service listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced server shutdown")
	}
	log.Info().Msg("server stopped")
}
