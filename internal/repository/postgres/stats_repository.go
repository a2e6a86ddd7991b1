package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/pkg/errors"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM toilets) AS toilet_count,
			(SELECT COUNT(*) FROM toilets WHERE status = 'open') AS open_toilet_count,
			(SELECT COUNT(*) FROM reviews) AS review_count,
			COALESCE((SELECT AVG(quality_score) FROM toilets WHERE quality_score IS NOT NULL), 0) AS avg_quality_score
	`

	var stats domain.Statistics
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.ToiletCount,
		&stats.OpenToiletCount,
		&stats.ReviewCount,
		&stats.AvgQualityScore,
	)
	if err != nil {
		r.logger.Error("Failed to get statistics", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	stats.UpdatedAt = time.Now().UTC()
	return &stats, nil
}
