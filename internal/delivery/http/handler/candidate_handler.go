package handler

import (
	"errors"
	"strconv"

	"talent-triage/internal/pkg/response"
	"talent-triage/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	uc usecase.IntakeUsecase
}

type submitCandidateRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	PositionSearched string `json:"position_searched"`
}

type candidateResponse struct {
	ID               uuid.UUID `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PositionSearched string    `json:"position_searched"`
	Category         string    `json:"category"`
	SubCategory      *string   `json:"sub_category"`
}

type submitCandidateResponse struct {
	Candidate candidateResponse `json:"candidate"`
	Queued    bool              `json:"queued_for_review"`
	Score     *int              `json:"match_score,omitempty"`
}

func NewCandidateHandler(uc usecase.IntakeUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// RegisterPublicRoutes exposes the intake endpoint; submissions come from the
// public site without authentication.
func (h *CandidateHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/candidates", h.Submit)
}

func (h *CandidateHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/candidates", h.List)
}

func (h *CandidateHandler) Submit(c fiber.Ctx) error {
	var req submitCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	result, err := h.uc.SubmitCandidate(c.Context(), usecase.SubmitCandidateInput{
		FullName:         req.FullName,
		Email:            req.Email,
		PositionSearched: req.PositionSearched,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	res := submitCandidateResponse{
		Candidate: candidateResponse{
			ID:               result.Candidate.ID,
			FullName:         result.Candidate.FullName,
			Email:            result.Candidate.Email,
			PositionSearched: result.Candidate.PositionSearched,
			Category:         result.Candidate.CategoryName,
			SubCategory:      result.Candidate.SubCategoryName,
		},
		Queued: result.Queued,
	}
	if result.Match != nil {
		res.Score = &result.Match.Score
	}
	return response.Success(c, fiber.StatusCreated, "Candidate created successfully", res)
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	items, err := h.uc.ListCandidates(c.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	res := make([]candidateResponse, 0, len(items))
	for _, it := range items {
		res = append(res, candidateResponse{
			ID:               it.ID,
			FullName:         it.FullName,
			Email:            it.Email,
			PositionSearched: it.PositionSearched,
			Category:         it.CategoryName,
			SubCategory:      it.SubCategoryName,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
