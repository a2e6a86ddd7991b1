package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/usecase"
)

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func TestStatsUseCase_GetStatistics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := time.Hour

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockStats := &MockStatsRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockStats, mockCache, logger, ttl)

		cached := &domain.Statistics{ToiletCount: 100}
		mockCache.On("GetStats", ctx).Return(cached, nil)

		stats, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(100), stats.ToiletCount)
		mockStats.AssertNotCalled(t, "GetStatistics")
	})

	t.Run("cache miss reads the database and caches the result", func(t *testing.T) {
		mockStats := &MockStatsRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockStats, mockCache, logger, ttl)

		fresh := &domain.Statistics{ToiletCount: 42, ReviewCount: 7}
		mockCache.On("GetStats", ctx).Return(nil, nil)
		mockStats.On("GetStatistics", ctx).Return(fresh, nil)
		mockCache.On("SetStats", ctx, fresh, ttl).Return(nil)

		stats, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), stats.ToiletCount)
		mockCache.AssertExpectations(t)
		mockStats.AssertExpectations(t)
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		mockStats := &MockStatsRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockStats, mockCache, logger, ttl)

		fresh := &domain.Statistics{ToiletCount: 42}
		mockCache.On("GetStats", ctx).Return(nil, errors.New("redis down"))
		mockStats.On("GetStatistics", ctx).Return(fresh, nil)
		mockCache.On("SetStats", ctx, fresh, ttl).Return(errors.New("redis down"))

		stats, err := uc.GetStatistics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), stats.ToiletCount)
	})

	t.Run("database error propagates", func(t *testing.T) {
		mockStats := &MockStatsRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(mockStats, mockCache, logger, ttl)

		mockCache.On("GetStats", ctx).Return(nil, nil)
		mockStats.On("GetStatistics", ctx).Return(nil, errors.New("no connection"))

		_, err := uc.GetStatistics(ctx)

		assert.Error(t, err)
	})
}
