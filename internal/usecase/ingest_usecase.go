package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/infrastructure/overpass"
	"github.com/dokopoo/toilet-service/internal/usecase/dto"
)

// OSMSource - источник OSM элементов для загрузки
type OSMSource interface {
	FetchToilets(ctx context.Context) ([]overpass.Element, error)
}

// IngestUseCase - загрузка туалетов из OSM в базу
type IngestUseCase struct {
	source     OSMSource
	toiletRepo repository.ToiletRepository
	logger     *zap.Logger
}

// NewIngestUseCase - создание нового IngestUseCase
func NewIngestUseCase(
	source OSMSource,
	toiletRepo repository.ToiletRepository,
	logger *zap.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		source:     source,
		toiletRepo: toiletRepo,
		logger:     logger,
	}
}

// Run загружает все туалеты из источника и делает upsert по osm_id.
// Оценка качества вычисляется здесь, один раз на загрузку - поисковые
// запросы её не пересчитывают.
func (uc *IngestUseCase) Run(ctx context.Context) (*dto.IngestResult, error) {
	elements, err := uc.source.FetchToilets(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.IngestResult{Fetched: len(elements)}

	for _, element := range elements {
		toilet := parseElement(element)
		if toilet == nil {
			result.Skipped++
			continue
		}

		quality := domain.CalculateQualityScore(toilet)
		toilet.QualityScore = &quality

		if err := uc.toiletRepo.Upsert(ctx, toilet); err != nil {
			uc.logger.Warn("Failed to upsert toilet",
				zap.Int64("osm_id", element.ID),
				zap.Error(err))
			result.Failed++
			continue
		}
		result.Upserted++
	}

	uc.logger.Info("OSM ingest completed",
		zap.Int("fetched", result.Fetched),
		zap.Int("upserted", result.Upserted),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed))

	return result, nil
}

// parseElement преобразует OSM элемент в туалет.
// Возвращает nil для элементов без координат.
func parseElement(e overpass.Element) *domain.Toilet {
	lat, lon, ok := e.Coordinates()
	if !ok {
		return nil
	}

	tags := e.Tags
	venueType := parseVenueType(tags)
	isIndoor := venueType != domain.VenueStreet && venueType != domain.VenuePark

	osmID := e.ID
	toilet := &domain.Toilet{
		OSMId:           &osmID,
		Name:            tagValue(tags, "name", "name:en"),
		Description:     tagValue(tags, "description", "description:en"),
		Latitude:        lat,
		Longitude:       lon,
		IsFree:          tags["fee"] != "yes",
		IsAccessible:    tags["wheelchair"] == "yes",
		HasBabyChange:   tags["changing_table"] == "yes" || tags["diaper"] == "yes",
		IsGenderNeutral: tags["unisex"] == "yes" || tags["gender"] == "unisex",
		IsIndoor:        isIndoor,
		VenueType:       venueType,
		BuildingName:    tagValue(tags, "building:name", "name:building"),
		Address:         parseAddress(tags),
		FloorLevel:      tagValue(tags, "level", "addr:floor"),
		OpeningHours:    tagValue(tags, "opening_hours"),
		Status:          domain.StatusOpen,
	}

	return toilet
}

// parseVenueType определяет тип заведения по OSM тегам
func parseVenueType(tags map[string]string) string {
	location := strings.ToLower(tags["location"])
	building := strings.ToLower(tags["building"])
	operator := strings.ToLower(tags["operator"])

	switch {
	case tags["railway"] != "" ||
		strings.Contains(operator, "jr") ||
		strings.Contains(operator, "metro") ||
		strings.Contains(operator, "station"):
		return domain.VenueStation
	case strings.Contains(building, "retail") ||
		strings.Contains(building, "commercial") ||
		tags["shop"] != "":
		return domain.VenueMall
	case location == "indoor" || building != "":
		return domain.VenueConvenienceStore
	case tags["leisure"] == "park" || tags["landuse"] == "recreation_ground":
		return domain.VenuePark
	}
	return domain.VenueStreet
}

// parseAddress собирает адрес из addr:* тегов
func parseAddress(tags map[string]string) *string {
	if full := tags["addr:full"]; full != "" {
		return &full
	}

	parts := make([]string, 0, 4)
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city", "addr:postcode"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return nil
	}

	address := strings.Join(parts, ", ")
	return &address
}

// tagValue возвращает первый непустой тег из списка ключей
func tagValue(tags map[string]string, keys ...string) *string {
	for _, key := range keys {
		if v := tags[key]; v != "" {
			return &v
		}
	}
	return nil
}
