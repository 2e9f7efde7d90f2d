// Package main is the entry point for the journal API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/myjournal/journal-api/internal/api"
	"github.com/myjournal/journal-api/internal/core/service"
	mongodb "github.com/myjournal/journal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/myjournal/journal-api/internal/infrastructure/db/redis"
	"github.com/myjournal/journal-api/internal/pkg/config"
	"github.com/myjournal/journal-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.NewArticleRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure article indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	tokens, err := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid token configuration")
	}

	e := api.NewRouter(db, rdb, api.RouterConfig{
		Tokens:        tokens,
		SecureCookies: cfg.Env != "development",
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting journal api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
