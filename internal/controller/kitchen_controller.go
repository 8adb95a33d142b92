package controller

import (
	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/pkg/serverutils"
	"smart-kitchen-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKitchenController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Appliances(ctx *fiber.Ctx) error
	Availability(ctx *fiber.Ctx) error
}

type kitchenController struct {
	kitchenService      service.IKitchenService
	availabilityService service.IAvailabilityService
}

func NewKitchenController(
	kitchenService service.IKitchenService,
	availabilityService service.IAvailabilityService,
) IKitchenController {
	return &kitchenController{
		kitchenService:      kitchenService,
		availabilityService: availabilityService,
	}
}

func (c *kitchenController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/kitchens")
	h.Get("", c.List)
	h.Get("/:id", c.Show)
	h.Get("/:id/appliances", c.Appliances)

	r.Get("/availability", c.Availability)
}

func (c *kitchenController) List(ctx *fiber.Ctx) error {
	res, err := c.kitchenService.ListKitchens(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list kitchens", res))
}

func (c *kitchenController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return apperror.Validation("kitchen id must be an integer")
	}

	res, err := c.kitchenService.GetKitchen(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show kitchen", res))
}

func (c *kitchenController) Appliances(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return apperror.Validation("kitchen id must be an integer")
	}

	res, err := c.kitchenService.ListAppliances(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list appliances", res))
}

func (c *kitchenController) Availability(ctx *fiber.Ctx) error {
	var query dto.AvailabilityQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.availabilityService.Availability(ctx.Context(), query.Kitchen, query.Date)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get availability", res))
}
