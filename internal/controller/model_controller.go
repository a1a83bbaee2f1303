package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-answer-engine-be/internal/pkg/serverutils"
	"ai-answer-engine-be/internal/service"
	"ai-answer-engine-be/pkg/rag/focus"
)

type IModelController interface {
	RegisterRoutes(r fiber.Router)
	Catalog(ctx *fiber.Ctx) error
	RuntimeConfig(ctx *fiber.Ctx) error
}

type modelController struct {
	service  service.IModelService
	registry *focus.Registry
}

func NewModelController(svc service.IModelService, registry *focus.Registry) IModelController {
	return &modelController{service: svc, registry: registry}
}

func (c *modelController) RegisterRoutes(r fiber.Router) {
	r.Group("/model/v1").Get("", c.Catalog)
	r.Group("/config/v1").Get("", c.RuntimeConfig)
}

func (c *modelController) Catalog(ctx *fiber.Ctx) error {
	res, err := c.service.Catalog(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get model catalog", res))
}

func (c *modelController) RuntimeConfig(ctx *fiber.Ctx) error {
	res := c.service.RuntimeConfig(c.registry.Names())
	return ctx.JSON(serverutils.SuccessResponse("Success get runtime config", res))
}
