package repository

import (
	"context"

	"github.com/dokopoo/toilet-service/internal/domain"
)

// ToiletRepository - доступ к туалетам в PostGIS
type ToiletRepository interface {
	// FindNearby возвращает до 20 открытых туалетов в радиусе radiusM метров
	// от точки, отсортированных по возрастанию геодезического расстояния.
	// venueTypes - опциональный фильтр по типу заведения.
	FindNearby(ctx context.Context, lat, lng float64, radiusM int, venueTypes []string) ([]*domain.Candidate, error)

	// GetByID возвращает туалет по идентификатору
	GetByID(ctx context.Context, id int64) (*domain.Toilet, error)

	// Upsert создаёт или обновляет туалет по osm_id (ключ дедупликации)
	Upsert(ctx context.Context, toilet *domain.Toilet) error

	// UpdateCachedAddress дописывает building_name/address, найденные через
	// reverse geocoding. COALESCE-семантика: существующие значения не
	// перезаписываются, затираются только NULL-колонки.
	UpdateCachedAddress(ctx context.Context, id int64, buildingName, address *string) error

	// RecalculateReviewAggregates пересчитывает review_count и
	// positive_percentage по таблице отзывов
	RecalculateReviewAggregates(ctx context.Context, id int64) error
}
