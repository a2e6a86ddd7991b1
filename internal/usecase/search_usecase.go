package usecase

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/config"
	"github.com/dokopoo/toilet-service/internal/domain"
	"github.com/dokopoo/toilet-service/internal/domain/repository"
	"github.com/dokopoo/toilet-service/internal/pkg/errors"
	"github.com/dokopoo/toilet-service/internal/pkg/utils"
	"github.com/dokopoo/toilet-service/internal/usecase/dto"
)

// SearchUseCase - поиск и ранжирование ближайших туалетов
type SearchUseCase struct {
	toiletRepo repository.ToiletRepository
	enricher   CandidateEnricher
	logger     *zap.Logger
	cfg        config.SearchConfig
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	toiletRepo repository.ToiletRepository,
	enricher CandidateEnricher,
	logger *zap.Logger,
	cfg config.SearchConfig,
) *SearchUseCase {
	return &SearchUseCase{
		toiletRepo: toiletRepo,
		enricher:   enricher,
		logger:     logger,
		cfg:        cfg,
	}
}

// FindNearby ищет открытые туалеты вокруг точки, расширяя радиус поиска
// шагами до максимума, пока не появятся кандидаты. Кандидаты ранжируются
// смесью близости и качества, обрезаются до limit и обогащаются адресами.
// Пустой результат после полного расширения - не ошибка.
func (uc *SearchUseCase) FindNearby(ctx context.Context, req dto.NearbyRequest) (*dto.NearbyResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	radius := req.Radius
	if radius == 0 {
		radius = uc.cfg.InitialRadius
	}
	if radius < 0 || radius > uc.cfg.MaxRadius {
		return nil, errors.ErrInvalidRadius
	}

	limit := req.Limit
	if limit <= 0 {
		limit = uc.cfg.DefaultLimit
	}
	if limit > uc.cfg.MaxLimit {
		limit = uc.cfg.MaxLimit
	}

	// Расширяем радиус, пока не найдём кандидатов или не упрёмся в максимум
	expanded := false
	var candidates []*domain.Candidate
	for {
		var err error
		candidates, err = uc.toiletRepo.FindNearby(ctx, req.Lat, req.Lng, radius, req.VenueTypes)
		if err != nil {
			uc.logger.Error("Failed to query nearby toilets",
				zap.Float64("lat", req.Lat),
				zap.Float64("lng", req.Lng),
				zap.Int("radius_m", radius),
				zap.Error(err))
			return nil, err
		}

		if len(candidates) > 0 || radius >= uc.cfg.MaxRadius {
			break
		}

		expanded = true
		radius += uc.cfg.RadiusStep
		if radius > uc.cfg.MaxRadius {
			radius = uc.cfg.MaxRadius
		}
	}

	for _, c := range candidates {
		c.DistanceM = int(math.Round(c.Distance))
		c.WalkTimeMin = domain.WalkTimeMin(c.DistanceM)
		c.RankScore = domain.RankScore(float64(c.DistanceM), c.QualityScore, c.PositivePercentage, c.ReviewCount)
	}

	// Стабильная сортировка: равные оценки сохраняют порядок провайдера
	// (по возрастанию расстояния)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RankScore > candidates[j].RankScore
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	candidates = uc.enricher.EnrichCandidates(ctx, candidates)
	if candidates == nil {
		candidates = []*domain.Candidate{}
	}

	uc.logger.Debug("Nearby search completed",
		zap.Int("results", len(candidates)),
		zap.Int("radius_used", radius),
		zap.Bool("expanded", expanded))

	return &dto.NearbyResponse{
		Results:    candidates,
		RadiusUsed: radius,
		Expanded:   expanded,
	}, nil
}
