package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/stocktrack/inventory-api/internal/api"
	"github.com/stocktrack/inventory-api/internal/infrastructure/config"
	mongodb "github.com/stocktrack/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/stocktrack/inventory-api/internal/infrastructure/db/redis"
	"github.com/stocktrack/inventory-api/internal/infrastructure/queue"
	"github.com/stocktrack/inventory-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Service: "inventory-api",
		Pretty:  cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer disconnectCancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("user index creation failed")
	}
	itemRepo := mongodb.NewItemRepository(db)
	if err := itemRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("item index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	audit := queue.NewAuditDispatcher(0, mongodb.NewAuditRecorder(db), logg)
	audit.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, audit, logg)

	go func() {
		logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logg.Error().Err(err).Msg("server stopped")
			cancel()
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}
