package controller

import (
	"github.com/gofiber/fiber/v2"

	"ai-answer-engine-be/internal/pkg/serverutils"
	"ai-answer-engine-be/internal/service"
)

type IDiscoverController interface {
	RegisterRoutes(r fiber.Router)
	GetFeed(ctx *fiber.Ctx) error
}

type discoverController struct {
	service service.IDiscoverService
}

func NewDiscoverController(svc service.IDiscoverService) IDiscoverController {
	return &discoverController{service: svc}
}

func (c *discoverController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/discover/v1")
	h.Get("", c.GetFeed)
}

func (c *discoverController) GetFeed(ctx *fiber.Ctx) error {
	res, err := c.service.GetFeed(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get discover feed", res))
}
