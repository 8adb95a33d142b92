package controller

import (
	"io"
	"time"

	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/pkg/serverutils"
	"smart-kitchen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAccessController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

type accessController struct {
	accessService service.IAccessService
}

func NewAccessController(accessService service.IAccessService) IAccessController {
	return &accessController{
		accessService: accessService,
	}
}

func (c *accessController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/door")
	h.Post("/check", c.Check)
}

// Check takes a multipart upload under "faceImage", the format the door
// camera firmware sends.
func (c *accessController) Check(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("faceImage")
	if err != nil {
		return apperror.Validation("faceImage file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.Validation("faceImage file is unreadable")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return apperror.Validation("faceImage file is unreadable")
	}

	res, err := c.accessService.CheckDoorAccess(ctx.Context(), image, time.Now())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check door access", res))
}
