package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/usecase/dto"
)

// ToiletUseCase - чтение отдельных туалетов
type ToiletUseCase struct {
	toiletRepo repository.ToiletRepository
	reviewRepo repository.ReviewRepository
	logger     *zap.Logger
}

// NewToiletUseCase - создание нового ToiletUseCase
func NewToiletUseCase(
	toiletRepo repository.ToiletRepository,
	reviewRepo repository.ReviewRepository,
	logger *zap.Logger,
) *ToiletUseCase {
	return &ToiletUseCase{
		toiletRepo: toiletRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// GetDetail возвращает туалет с его последними отзывами
func (uc *ToiletUseCase) GetDetail(ctx context.Context, id int64) (*dto.ToiletDetailResponse, error) {
	toilet, err := uc.toiletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByToilet(ctx, id, defaultReviewLimit)
	if err != nil {
		uc.logger.Error("Failed to list reviews for toilet", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if reviews == nil {
		reviews = []*domain.Review{}
	}

	return &dto.ToiletDetailResponse{
		Toilet:  toilet,
		Reviews: reviews,
	}, nil
}
