package controller

import (
	"student-guide-be/internal/dto"
	"student-guide-be/internal/pkg/serverutils"
	"student-guide-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGuideController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type guideController struct {
	guideService service.IGuideService
}

func NewGuideController(guideService service.IGuideService) IGuideController {
	return &guideController{
		guideService: guideService,
	}
}

func (c *guideController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guide/v1")
	h.Post("chat", c.Chat)
}

func (c *guideController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guideService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
