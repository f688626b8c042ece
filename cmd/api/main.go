package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/portfolio-cms/portfolio-api/internal/api"
	"github.com/portfolio-cms/portfolio-api/internal/core/service"
	"github.com/portfolio-cms/portfolio-api/internal/infrastructure/config"
	"github.com/portfolio-cms/portfolio-api/internal/infrastructure/db/postgres"
	"github.com/portfolio-cms/portfolio-api/internal/infrastructure/db/redis"
	"github.com/portfolio-cms/portfolio-api/internal/infrastructure/security"
	"github.com/portfolio-cms/portfolio-api/migrations"
	"github.com/portfolio-cms/portfolio-api/pkg/logger"
)

// devJWTSecret is the signing secret for local development only. Production
// refuses to start without an explicit JWT_SECRET.
const devJWTSecret = "insecure-development-secret-change-me!!"

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
		secret = devJWTSecret
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- PostgreSQL ---
	db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	if err := migrations.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	// --- Redis (optional: contact dedup degrades gracefully without it) ---
	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, contact dedup disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// --- Bootstrap default admin ---
	hasher := security.NewBcryptHasher(cfg.Auth.HasherCost)
	bootstrap := service.NewBootstrap(postgres.NewUserRepository(db), hasher,
		cfg.Auth.DefaultAdminUsername, cfg.Auth.DefaultAdminPassword, log)
	if err := bootstrap.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// --- HTTP server ---
	e, err := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret:  secret,
		TokenTTL:   time.Duration(cfg.Auth.JWTExpirationMS) * time.Millisecond,
		HasherCost: cfg.Auth.HasherCost,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router construction failed")
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped cleanly")
}
