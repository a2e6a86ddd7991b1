package main

// @title Dokopoo Toilet Service API
// @version 1.0.0
// @description Сервис поиска ближайших общественных туалетов. Ищет открытые туалеты вокруг точки, расширяя радиус до 2 км, и ранжирует их смесью близости и качества.
// @description
// @description Основные возможности:
// @description - Поиск ближайших туалетов с автоматическим расширением радиуса
// @description - Ранжирование по расстоянию и оценке качества (метаданные + отзывы)
// @description - Обогащение результатов адресами через reverse geocoding
// @description - Отзывы: один девайс - один отзыв на туалет
// @description - Статистика по загруженным данным

// @contact.name API Support
// @contact.email support@dokopoo.app

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/dokopoo/toilet-service/docs"
	"github.com/dokopoo/toilet-service/internal/config"
	httpDelivery "github.com/dokopoo/toilet-service/internal/delivery/http"
	"github.com/dokopoo/toilet-service/internal/delivery/http/handler"
	"github.com/dokopoo/toilet-service/internal/infrastructure/nominatim"
	"github.com/dokopoo/toilet-service/internal/pkg/logger"
	"github.com/dokopoo/toilet-service/internal/repository/cache"
	"github.com/dokopoo/toilet-service/internal/repository/postgres"
	redisRepo "github.com/dokopoo/toilet-service/internal/repository/redis"
	"github.com/dokopoo/toilet-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Dokopoo Toilet Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks + schema bootstrap
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	if err := db.InitSchema(ctx); err != nil {
		log.Fatal("Failed to init database schema", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	toiletRepo := postgres.NewToiletRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	geocodeRepo := nominatim.NewClient(&cfg.Nominatim, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	enrichmentUC := usecase.NewEnrichmentUseCase(geocodeRepo, streamRepo, log)
	searchUC := usecase.NewSearchUseCase(toiletRepo, enrichmentUC, log, cfg.Search)
	toiletUC := usecase.NewToiletUseCase(toiletRepo, reviewRepo, log)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, toiletRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	toiletHandler := handler.NewToiletHandler(searchUC, toiletUC, log)
	reviewHandler := handler.NewReviewHandler(reviewUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		toiletHandler,
		reviewHandler,
		statsHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
