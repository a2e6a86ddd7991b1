package repository

import (
	"context"
	"time"

	"github.com/dokopoo/toilet-service/internal/domain"
)

// CacheRepository - кеш в Redis
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	GetStats(ctx context.Context) (*domain.Statistics, error)
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
