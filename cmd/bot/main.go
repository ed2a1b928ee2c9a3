package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"contractbot/internal/bot"
	"contractbot/internal/company"
	"contractbot/internal/config"
	"contractbot/internal/conversation"
	"contractbot/internal/document"
	"contractbot/internal/infrastructure/logger"
	"contractbot/internal/infrastructure/mysql"
	redisconn "contractbot/internal/infrastructure/redis"
	"contractbot/internal/server"
	"contractbot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	registry := company.Registry{}

	assets, err := document.LoadAssets(cfg.Assets.Dir, registry.Keys())
	if err != nil {
		zapLogger.Fatal("loading assets", zap.Error(err))
	}
	zapLogger.Info("assets loaded", zap.String("dir", cfg.Assets.Dir))

	renderer := document.NewRenderer(assets, zapLogger)

	var store storage.Store
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := redisconn.NewClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("connecting to redis", zap.Error(err))
		}
		defer client.Close()
		store = storage.NewRedisStore(client, cfg.Store.SessionTTL)
	case config.BackendMySQL:
		db, err := mysql.NewConnection(cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		mysqlStore := storage.NewMySQLStore(db)
		if err := mysqlStore.EnsureSchema(context.Background()); err != nil {
			zapLogger.Fatal("preparing session schema", zap.Error(err))
		}
		store = mysqlStore
	default:
		store = storage.NewMemoryStore()
	}
	zapLogger.Info("conversation store ready", zap.String("backend", cfg.Store.Backend))

	machine := conversation.NewMachine(store, registry, renderer, zapLogger)

	telegramBot, err := bot.New(cfg.Bot.Token, machine, registry, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating bot", zap.Error(err))
	}

	srv := server.New(cfg.Server.Port, server.NewRouter(zapLogger), zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("ops server error", zap.Error(err))
		}
	}()

	go func() {
		if err := telegramBot.Run(ctx); err != nil {
			zapLogger.Fatal("bot error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("received shutdown signal")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("ops server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("stopped gracefully")
}
