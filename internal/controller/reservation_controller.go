package controller

import (
	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/pkg/serverutils"
	"smart-kitchen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReservationController interface {
	RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type reservationController struct {
	reservationService service.IReservationService
}

func NewReservationController(reservationService service.IReservationService) IReservationController {
	return &reservationController{
		reservationService: reservationService,
	}
}

func (c *reservationController) RegisterRoutes(r fiber.Router, sessionMiddleware fiber.Handler) {
	h := r.Group("/reservations")
	h.Use(sessionMiddleware)
	h.Post("", c.Create)
	h.Get("/me", c.List)
	h.Delete("/:id", c.Cancel)
}

func (c *reservationController) Create(ctx *fiber.Ctx) error {
	isic := serverutils.MemberIsic(ctx)

	var req dto.CreateReservationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reservationService.Book(ctx.Context(), isic, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create reservation", res))
}

func (c *reservationController) List(ctx *fiber.Ctx) error {
	isic := serverutils.MemberIsic(ctx)

	res, err := c.reservationService.ListForMember(ctx.Context(), isic)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list reservations", res))
}

func (c *reservationController) Cancel(ctx *fiber.Ctx) error {
	isic := serverutils.MemberIsic(ctx)
	id := ctx.Params("id")

	if err := c.reservationService.Cancel(ctx.Context(), isic, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cancel reservation", nil))
}
