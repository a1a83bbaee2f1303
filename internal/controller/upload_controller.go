package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ai-answer-engine-be/internal/pkg/serverutils"
	"ai-answer-engine-be/internal/service"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
}

func NewUploadController(svc service.IUploadService) IUploadController {
	return &uploadController{service: svc}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload/v1")
	h.Post("", c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No files provided")
	}

	res, err := c.service.Upload(ctx.Context(), files)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFileType) {
			return fiber.NewError(fiber.StatusBadRequest, "Unsupported file type")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload files", res))
}
