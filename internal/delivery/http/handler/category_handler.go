package handler

import (
	"errors"

	"talent-triage/internal/pkg/response"
	"talent-triage/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	uc usecase.TaxonomyUsecase
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type createSubCategoryRequest struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

func NewCategoryHandler(uc usecase.TaxonomyUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/categories", h.List)
}

func (h *CategoryHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/categories", h.Create)
	r.Post("/categories/:id/sub-categories", h.CreateSub)
}

func (h *CategoryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *CategoryHandler) Create(c fiber.Ctx) error {
	var req createCategoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return mapTaxonomyError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Category created successfully", created)
}

func (h *CategoryHandler) CreateSub(c fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req createSubCategoryRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.CreateSubCategory(c.Context(), categoryID, req.Name, req.Keywords)
	if err != nil {
		return mapTaxonomyError(c, err)
	}
	return response.Success(c, fiber.StatusCreated, "Sub-category created successfully", created)
}

func mapTaxonomyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrConflict):
		return response.Error(c, fiber.StatusConflict, response.MessageConflict, nil)
	case errors.Is(err, usecase.ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, response.MessageNotFound, nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
