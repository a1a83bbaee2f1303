package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ai-answer-engine-be/internal/dto"
	"ai-answer-engine-be/internal/pkg/serverutils"
	"ai-answer-engine-be/internal/service"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	service service.ISearchService
}

func NewSearchController(svc service.ISearchService) ISearchController {
	return &searchController{service: svc}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Post("", c.Search)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFocusMode) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid focus mode")
		}
		if errors.Is(err, service.ErrInvalidModelSelection) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid model selected")
		}
		return err
	}

	return ctx.JSON(res)
}
