package main

import (
	"animalquiz/internal/cache"
	"animalquiz/internal/config"
	"animalquiz/internal/logging"
	"animalquiz/internal/repository"
	"animalquiz/internal/service"
	"animalquiz/internal/transport/rest"
	"animalquiz/internal/transport/ws"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// @title Animal Quiz API
// @version 1.0
// @description Personality quiz attempts over REST and WebSocket
// @host localhost:8080
// @BasePath /v1
func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Question bank: file, then MongoDB, then built-in
	var bankStore repository.BankRepo
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			logger.Fatal("failed to ping MongoDB", zap.Error(err))
		}
		logger.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))
		bankStore = repository.NewMongoBankRepo(mongoClient.Database(cfg.MongoDB))
	}

	bank, source, err := repository.ResolveBank(ctx, cfg.BankFile, bankStore, cfg.BankName)
	if err != nil {
		logger.Fatal("failed to load question bank", zap.Error(err))
	}
	logger.Info("question bank loaded",
		zap.String("bank", bank.Name),
		zap.String("source", source),
		zap.Int("questions", len(bank.Questions)),
		zap.Int("categories", len(bank.Categories)),
	)

	// Attempt cache: Redis when configured, process memory otherwise
	var attempts cache.AttemptCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			logger.Fatal("failed to ping Redis", zap.Error(err))
		}
		logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
		attempts = cache.NewAttemptCache(rdb, cfg.AttemptTTL)
	} else {
		logger.Warn("REDIS_URI not set, keeping attempts in memory")
		attempts = cache.NewMemoryAttemptCache(cfg.AttemptTTL)
	}

	wsHub := ws.NewHub(logger)
	defer wsHub.Close()

	authSvc := service.NewAuthService(cfg.JWTSecret)
	attemptSvc := service.NewAttemptService(bank, attempts, authSvc, cfg.SiteURL, logger)
	attemptSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		Config:         cfg,
		AuthService:    authSvc,
		AttemptService: attemptSvc,
		WSHub:          wsHub,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
