package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
)

// EnrichmentUseCase дополняет кандидатов адресными данными через
// reverse geocoding. Вся работа best-effort: любая ошибка геокодера
// возвращает кандидата как есть и никогда не роняет поисковый запрос.
type EnrichmentUseCase struct {
	geocodeRepo repository.GeocodeRepository
	streamRepo  repository.StreamRepository
	logger      *zap.Logger
}

// NewEnrichmentUseCase - создание нового EnrichmentUseCase
func NewEnrichmentUseCase(
	geocodeRepo repository.GeocodeRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *EnrichmentUseCase {
	return &EnrichmentUseCase{
		geocodeRepo: geocodeRepo,
		streamRepo:  streamRepo,
		logger:      logger,
	}
}

// EnrichCandidates обогащает кандидатов параллельно и независимо:
// ошибка одного кандидата не влияет на остальных, возврат происходит
// после завершения всех (join-all).
func (uc *EnrichmentUseCase) EnrichCandidates(ctx context.Context, candidates []*domain.Candidate) []*domain.Candidate {
	var wg sync.WaitGroup
	for _, c := range candidates {
		wg.Add(1)
		go func(c *domain.Candidate) {
			defer wg.Done()
			uc.enrichCandidate(ctx, c)
		}(c)
	}
	wg.Wait()

	return candidates
}

func (uc *EnrichmentUseCase) enrichCandidate(ctx context.Context, c *domain.Candidate) {
	// Адрес уже закеширован - внешний вызов не нужен
	if c.HasAddressInfo() {
		return
	}

	place, err := uc.geocodeRepo.ReverseGeocode(ctx, c.Latitude, c.Longitude)
	if err != nil {
		uc.logger.Debug("Reverse geocode failed, candidate returned as-is",
			zap.Int64("toilet_id", c.ID),
			zap.Error(err))
		return
	}

	// Существующие значения никогда не перезаписываются
	var buildingName, address *string
	if c.BuildingName == nil || *c.BuildingName == "" {
		if name := place.BuildingName(); name != "" {
			buildingName = &name
		}
	}
	if c.Address == nil || *c.Address == "" {
		if addr := place.StreetAddress(); addr != "" {
			address = &addr
		}
	}

	if buildingName == nil && address == nil {
		return
	}

	if buildingName != nil {
		c.BuildingName = buildingName
	}
	if address != nil {
		c.Address = address
	}

	// Отложенная запись в БД: следующие поиски этого туалета
	// пропустят геокодер. Ошибка публикации глотается - кеширование
	// best-effort и не влияет на ответ.
	event := domain.AddressCacheFillEvent{
		EventID:      uuid.New(),
		ToiletID:     c.ID,
		BuildingName: buildingName,
		Address:      address,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamAddressCacheFill, event); err != nil {
		uc.logger.Warn("Failed to enqueue address cache-fill",
			zap.Int64("toilet_id", c.ID),
			zap.Error(err))
	}
}
