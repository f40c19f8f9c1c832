package handler

import (
	"errors"
	"time"

	"talent-triage/internal/pkg/response"
	"talent-triage/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PendingHandler struct {
	pending  usecase.PendingUsecase
	approval usecase.ApprovalUsecase
}

type pendingItemResponse struct {
	ID                   uuid.UUID `json:"id"`
	OriginalTitle        string    `json:"original_title"`
	Status               string    `json:"status"`
	SuggestedCategory    *string   `json:"suggested_category"`
	SuggestedSubCategory *string   `json:"suggested_sub_category"`
	Guess                *guess    `json:"guess,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

type guess struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Score       int    `json:"score"`
}

type approveRequest struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
}

type approveResponse struct {
	CategoryID             uuid.UUID `json:"category_id"`
	CategoryName           string    `json:"category_name"`
	SubCategoryID          uuid.UUID `json:"sub_category_id"`
	SubCategoryName        string    `json:"sub_category_name"`
	ReclassifiedCandidates int64     `json:"reclassified_candidates"`
}

func NewPendingHandler(pending usecase.PendingUsecase, approval usecase.ApprovalUsecase) *PendingHandler {
	return &PendingHandler{pending: pending, approval: approval}
}

func (h *PendingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/pending-categories")
	grp.Get("/", h.List)
	grp.Post("/:id/approve", h.Approve)
	grp.Post("/:id/reject", h.Reject)
}

func (h *PendingHandler) List(c fiber.Ctx) error {
	items, err := h.pending.ListPending(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	res := make([]pendingItemResponse, 0, len(items))
	for _, it := range items {
		item := pendingItemResponse{
			ID:                   it.ID,
			OriginalTitle:        it.OriginalTitle,
			Status:               it.Status,
			SuggestedCategory:    it.SuggestedCategory,
			SuggestedSubCategory: it.SuggestedSubCategory,
			CreatedAt:            it.CreatedAt,
		}
		if it.Guess != nil {
			item.Guess = &guess{Category: it.Guess.Category, SubCategory: it.Guess.SubCategory, Score: it.Guess.Score}
		}
		res = append(res, item)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *PendingHandler) Approve(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req approveRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	result, err := h.approval.Approve(c.Context(), id, req.Category, req.SubCategory)
	if err != nil {
		return mapPendingError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Suggestion approved", approveResponse{
		CategoryID:             result.Category.ID,
		CategoryName:           result.Category.Name,
		SubCategoryID:          result.SubCategory.ID,
		SubCategoryName:        result.SubCategory.Name,
		ReclassifiedCandidates: result.ReclassifiedCandidates,
	})
}

func (h *PendingHandler) Reject(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.pending.Reject(c.Context(), id); err != nil {
		return mapPendingError(c, err)
	}
	return response.Success(c, fiber.StatusOK, "Suggestion rejected", nil)
}

func mapPendingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
	case errors.Is(err, usecase.ErrInvalidStateTransition):
		return response.Error(c, fiber.StatusConflict, "Suggestion already resolved", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
