package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/pkg/errors"
)

type reviewRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReviewRepository(db *DB) repository.ReviewRepository {
	return &reviewRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reviewRepository) ExistsByFingerprint(ctx context.Context, toiletID int64, fingerprint string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE fingerprint = $1 AND toilet_id = $2)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, fingerprint, toiletID).Scan(&exists)
	if err != nil {
		r.logger.Error("Failed to check existing review",
			zap.Int64("toilet_id", toiletID),
			zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (toilet_id, fingerprint, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	created := *review
	err := r.db.QueryRowContext(ctx, query,
		review.ToiletID, review.Fingerprint, review.Rating, review.Comment,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create review",
			zap.Int64("toilet_id", review.ToiletID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *reviewRepository) ListByToilet(ctx context.Context, toiletID int64, limit int) ([]*domain.Review, error) {
	query := `
		SELECT id, toilet_id, fingerprint, rating, comment, created_at
		FROM reviews
		WHERE toilet_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, toiletID, limit)
	if err != nil {
		r.logger.Error("Failed to list reviews",
			zap.Int64("toilet_id", toiletID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		var rev domain.Review
		err := rows.Scan(&rev.ID, &rev.ToiletID, &rev.Fingerprint, &rev.Rating, &rev.Comment, &rev.CreatedAt)
		if err != nil {
			continue
		}
		reviews = append(reviews, &rev)
	}

	return reviews, nil
}
