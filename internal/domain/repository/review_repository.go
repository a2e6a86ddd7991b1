package repository

import (
	"context"

	"github.com/dokopoo/toilet-service/internal/domain"
)

// ReviewRepository - доступ к отзывам
type ReviewRepository interface {
	// ExistsByFingerprint проверяет, оставлял ли девайс отзыв об этом туалете
	ExistsByFingerprint(ctx context.Context, toiletID int64, fingerprint string) (bool, error)

	// Create сохраняет отзыв и возвращает его с присвоенным id и временем
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)

	// ListByToilet возвращает последние отзывы о туалете
	ListByToilet(ctx context.Context, toiletID int64, limit int) ([]*domain.Review, error)
}
