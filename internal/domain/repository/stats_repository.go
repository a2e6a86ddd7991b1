package repository

import (
	"context"

	"github.com/dokopoo/toilet-service/internal/domain"
)

// StatsRepository - статистика по загруженным данным
type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
