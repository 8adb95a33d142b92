package controller

import (
	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/pkg/serverutils"
	"smart-kitchen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMemberController interface {
	RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler)
	UpdateTheme(ctx *fiber.Ctx) error
}

type memberController struct {
	memberService service.IMemberService
}

func NewMemberController(memberService service.IMemberService) IMemberController {
	return &memberController{
		memberService: memberService,
	}
}

func (c *memberController) RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler) {
	h := r.Group("/members")
	h.Use(sessionMiddleware)
	h.Put("/me/theme", c.UpdateTheme)
}

func (c *memberController) UpdateTheme(ctx *fiber.Ctx) error {
	isic := serverutils.MemberIsic(ctx)

	var req dto.UpdateThemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.memberService.UpdateTheme(ctx.Context(), isic, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update theme", res))
}
