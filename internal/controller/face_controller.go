package controller

import (
	"encoding/base64"
	"strings"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/pkg/serverutils"
	"smart-kitchen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFaceController interface {
	RegisterRoutes(r fiber.Router)
	Enroll(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
}

type faceController struct {
	faceService service.IFaceService
}

func NewFaceController(faceService service.IFaceService) IFaceController {
	return &faceController{
		faceService: faceService,
	}
}

func (c *faceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/face")
	h.Post("/enroll", c.Enroll)
	h.Post("/verify", c.Verify)
}

// decodeImage accepts plain base64 or a data URI
// ("data:image/jpeg;base64,...").
func decodeImage(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ","); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+1:]
	}
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperror.Validation("image is not valid base64")
	}
	return image, nil
}

func (c *faceController) Enroll(ctx *fiber.Ctx) error {
	var req dto.EnrollFaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	image, err := decodeImage(req.Image)
	if err != nil {
		return err
	}

	res, err := c.faceService.Enroll(ctx.Context(), req.Isic, image)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success enroll face", res))
}

func (c *faceController) Verify(ctx *fiber.Ctx) error {
	var req dto.VerifyFaceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	image, err := decodeImage(req.Image)
	if err != nil {
		return err
	}

	res, err := c.faceService.VerifyLogin(ctx.Context(), image)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success verify face", res))
}
