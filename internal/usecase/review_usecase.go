package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/pkg/errors"
	"github.com/dokopoo/toilet-service/internal/usecase/dto"
)

// Сколько последних отзывов отдаётся в API
const defaultReviewLimit = 10

// ReviewUseCase - создание и чтение отзывов
type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	toiletRepo repository.ToiletRepository
	logger     *zap.Logger
}

// NewReviewUseCase - создание нового ReviewUseCase
func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	toiletRepo repository.ToiletRepository,
	logger *zap.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		toiletRepo: toiletRepo,
		logger:     logger,
	}
}

// SubmitReview сохраняет отзыв. Один девайс (fingerprint) может оставить
// не больше одного отзыва о туалете - повторная попытка отклоняется с 409.
// После успешной вставки пересчитываются агрегаты туалета.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, toiletID int64, req dto.CreateReviewRequest) (*domain.Review, error) {
	if _, err := uc.toiletRepo.GetByID(ctx, toiletID); err != nil {
		return nil, err
	}

	exists, err := uc.reviewRepo.ExistsByFingerprint(ctx, toiletID, req.Fingerprint)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrAlreadyReviewed
	}

	review := &domain.Review{
		ToiletID:    toiletID,
		Fingerprint: req.Fingerprint,
		Rating:      *req.Rating,
		Comment:     req.Comment,
	}

	created, err := uc.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := uc.toiletRepo.RecalculateReviewAggregates(ctx, toiletID); err != nil {
		// Отзыв уже сохранён; агрегаты догонят при следующей вставке
		uc.logger.Warn("Failed to recalculate review aggregates",
			zap.Int64("toilet_id", toiletID),
			zap.Error(err))
	}

	uc.logger.Info("Review created",
		zap.Int64("toilet_id", toiletID),
		zap.Int("rating", created.Rating))

	return created, nil
}

// ListReviews возвращает последние отзывы о туалете
func (uc *ReviewUseCase) ListReviews(ctx context.Context, toiletID int64) (*dto.ReviewsResponse, error) {
	reviews, err := uc.reviewRepo.ListByToilet(ctx, toiletID, defaultReviewLimit)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []*domain.Review{}
	}

	return &dto.ReviewsResponse{Reviews: reviews}, nil
}
