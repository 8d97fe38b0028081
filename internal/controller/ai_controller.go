package controller

import (
	"acadmix-be/internal/dto"
	"acadmix-be/internal/pkg/serverutils"
	"acadmix-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type aiController struct {
	aiChatService service.IAiChatService
}

func NewAiController(aiChatService service.IAiChatService) IAiController {
	return &aiController{
		aiChatService: aiChatService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("chat", c.Chat)
	h.Get("history", c.History)
	h.Delete("history", c.ClearHistory)
}

func (c *aiController) Chat(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var req dto.AiChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiChatService.Chat(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ai chat", res))
}

func (c *aiController) History(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	var req dto.AiHistoryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.aiChatService.History(ctx.Context(), userId, req.Limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get ai history", res))
}

func (c *aiController) ClearHistory(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	if err := c.aiChatService.ClearHistory(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear ai history", nil))
}
