package repository

import (
	"context"

	"github.com/dokopoo/toilet-service/internal/domain"
)

// GeocodeRepository - внешний reverse-геокодер.
// Вызовы best-effort: любая ошибка трактуется потребителем как "нет данных".
type GeocodeRepository interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.ReversePlace, error)
}
