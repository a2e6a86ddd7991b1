package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/dokopoo/toilet-service/internal/pkg/errors"
	"github.com/dokopoo/toilet-service/internal/pkg/utils"
	"github.com/dokopoo/toilet-service/internal/pkg/validator"
	"github.com/dokopoo/toilet-service/internal/usecase"
	"github.com/dokopoo/toilet-service/internal/usecase/dto"
)

// ReviewHandler - обработчик для отзывов
type ReviewHandler struct {
	reviewUC *usecase.ReviewUseCase
	logger   *zap.Logger
}

// NewReviewHandler - создание нового ReviewHandler
func NewReviewHandler(reviewUC *usecase.ReviewUseCase, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Список отзывов о туалете
// @Description Возвращает последние отзывы о туалете
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "ID туалета"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReviewsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/toilets/{id}/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidToiletID)
	}

	result, err := h.reviewUC.ListReviews(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Reviews),
	})
}

// Create godoc
// @Summary Создание отзыва
// @Description Сохраняет отзыв о туалете. Один fingerprint - один отзыв на туалет.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "ID туалета"
// @Param review body dto.CreateReviewRequest true "Отзыв"
// @Success 201 {object} utils.SuccessResponse{data=domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/toilets/{id}/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidToiletID)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		h.logger.Debug("Review validation failed", zap.Error(err))
		if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 1) {
			return utils.SendError(c, errors.ErrInvalidRating)
		}
		if req.Comment != nil && len(*req.Comment) > 200 {
			return utils.SendError(c, errors.ErrCommentTooLong)
		}
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	review, err := h.reviewUC.SubmitReview(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: review})
}
