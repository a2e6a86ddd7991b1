package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/config"
	"github.com/dokopoo/toilet-service/internal/infrastructure/overpass"
	"github.com/dokopoo/toilet-service/internal/pkg/logger"
	"github.com/dokopoo/toilet-service/internal/repository/postgres"
	"github.com/dokopoo/toilet-service/internal/usecase"
)

// Разовая загрузка туалетов из OpenStreetMap (Overpass API) в базу.
// Запускается вручную или по расписанию; upsert по osm_id делает
// повторные запуски безопасными.
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

	log.Info("Starting OSM toilet seed",
		zap.String("overpass_url", cfg.Overpass.URL),
		zap.Float64("bbox_south", cfg.Overpass.BBoxSouth),
		zap.Float64("bbox_west", cfg.Overpass.BBoxWest),
		zap.Float64("bbox_north", cfg.Overpass.BBoxNorth),
		zap.Float64("bbox_east", cfg.Overpass.BBoxEast))

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

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Overpass.RequestTimeout+60)*time.Second)
	defer cancel()

	if err := db.InitSchema(ctx); err != nil {
		log.Fatal("Failed to init database schema", zap.Error(err))
	}

	// 4. Run ingestion
	toiletRepo := postgres.NewToiletRepository(db)
	source := overpass.NewClient(&cfg.Overpass, log)
	ingestUC := usecase.NewIngestUseCase(source, toiletRepo, log)

	result, err := ingestUC.Run(ctx)
	if err != nil {
		log.Fatal("Ingestion failed", zap.Error(err))
	}

	log.Info("Ingestion finished",
		zap.Int("fetched", result.Fetched),
		zap.Int("upserted", result.Upserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed))
}
