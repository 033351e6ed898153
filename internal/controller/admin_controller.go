package controller

import (
	"student-guide-be/internal/dto"
	"student-guide-be/internal/pkg/serverutils"
	"student-guide-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	SuggestIntent(ctx *fiber.Ctx) error
	CreateIntent(ctx *fiber.Ctx) error
	UpdateIntent(ctx *fiber.Ctx) error
	DeleteIntent(ctx *fiber.Ctx) error
	GetAllIntents(ctx *fiber.Ctx) error
	CreateKnowledge(ctx *fiber.Ctx) error
	GetKnowledgeByIntent(ctx *fiber.Ctx) error
	DeleteKnowledge(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("intent/suggest", c.SuggestIntent)
	h.Get("intent", c.GetAllIntents)
	h.Post("intent", c.CreateIntent)
	h.Put("intent/:id", c.UpdateIntent)
	h.Delete("intent/:id", c.DeleteIntent)
	h.Get("intent/:id/knowledge", c.GetKnowledgeByIntent)
	h.Post("knowledge", c.CreateKnowledge)
	h.Delete("knowledge/:id", c.DeleteKnowledge)
}

func (c *adminController) SuggestIntent(ctx *fiber.Ctx) error {
	var req dto.SuggestIntentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.SuggestIntent(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success suggest intent", res))
}

func (c *adminController) CreateIntent(ctx *fiber.Ctx) error {
	var req dto.CreateIntentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateIntent(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create intent", res))
}

func (c *adminController) UpdateIntent(ctx *fiber.Ctx) error {
	var req dto.UpdateIntentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateIntent(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update intent", res))
}

func (c *adminController) DeleteIntent(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := c.adminService.DeleteIntent(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete intent", nil))
}

func (c *adminController) GetAllIntents(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetAllIntents(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get intents", res))
}

func (c *adminController) CreateKnowledge(ctx *fiber.Ctx) error {
	var req dto.CreateKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateKnowledge(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create knowledge", res))
}

func (c *adminController) GetKnowledgeByIntent(ctx *fiber.Ctx) error {
	intentId := ctx.Params("id")
	res, err := c.adminService.GetKnowledgeByIntent(ctx.Context(), intentId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get knowledge", res))
}

func (c *adminController) DeleteKnowledge(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid knowledge id")
	}
	if err := c.adminService.DeleteKnowledge(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete knowledge", nil))
}
