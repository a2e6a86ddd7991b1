package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/pkg/errors"
	"github.com/dokopoo/toilet-service/internal/pkg/utils"
	"github.com/dokopoo/toilet-service/internal/pkg/validator"
	"github.com/dokopoo/toilet-service/internal/usecase"
	"github.com/dokopoo/toilet-service/internal/usecase/dto"
)

// ToiletHandler - обработчик для поиска и чтения туалетов
type ToiletHandler struct {
	searchUC *usecase.SearchUseCase
	toiletUC *usecase.ToiletUseCase
	logger   *zap.Logger
}

// NewToiletHandler - создание нового ToiletHandler
func NewToiletHandler(searchUC *usecase.SearchUseCase, toiletUC *usecase.ToiletUseCase, logger *zap.Logger) *ToiletHandler {
	return &ToiletHandler{
		searchUC: searchUC,
		toiletUC: toiletUC,
		logger:   logger,
	}
}

// Nearby godoc
// @Summary Поиск ближайших туалетов
// @Description Возвращает ближайшие открытые туалеты, отранжированные смесью близости и качества. Радиус поиска автоматически расширяется до 2 км, если рядом ничего нет.
// @Tags Toilets
// @Accept json
// @Produce json
// @Param lat query number true "Широта"
// @Param lng query number true "Долгота"
// @Param radius query int false "Начальный радиус поиска в метрах" default(500)
// @Param limit query int false "Максимальное количество результатов" default(5)
// @Param types query string false "Фильтр по типам заведений через запятую (station, mall, ...)"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/toilets/nearby [get]
func (h *ToiletHandler) Nearby(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	req := dto.NearbyRequest{
		Lat:        lat,
		Lng:        lng,
		Radius:     c.QueryInt("radius", 0),
		Limit:      c.QueryInt("limit", 0),
		VenueTypes: parseVenueTypes(c.Query("types")),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.searchUC.FindNearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Results),
	})
}

// GetByID godoc
// @Summary Получение туалета по ID
// @Description Возвращает туалет и его последние отзывы
// @Tags Toilets
// @Accept json
// @Produce json
// @Param id path int true "ID туалета"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToiletDetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/toilets/{id} [get]
func (h *ToiletHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidToiletID)
	}

	result, err := h.toiletUC.GetDetail(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// parseVenueTypes разбирает список типов заведений из query-параметра
func parseVenueTypes(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
