package controller

import (
	"acadmix-be/internal/config"
	"acadmix-be/internal/dto"
	"acadmix-be/internal/pkg/serverutils"
	"acadmix-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	AddParticipant(ctx *fiber.Ctx) error
	RemoveParticipant(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	uploadCfg   config.UploadConfig
}

func NewChatController(chatService service.IChatService, uploadCfg config.UploadConfig) IChatController {
	return &chatController{
		chatService: chatService,
		uploadCfg:   uploadCfg,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id/messages", c.Messages)
	h.Post(":id/messages", c.SendMessage)
	h.Post(":id/participants", c.AddParticipant)
	h.Delete(":id/participants/:userId", c.RemoveParticipant)
	h.Delete(":id", c.Delete)
	h.Post(":id/read", c.MarkRead)
}

func (c *chatController) Create(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var req dto.CreateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Create(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create chat", res))
}

func (c *chatController) List(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	res, err := c.chatService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chats", res))
}

func (c *chatController) Messages(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)
	chatId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.MessageListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.chatService.Messages(ctx.Context(), userId, chatId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list messages", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)
	chatId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	// An attachment can stand in for text, so resolve the file before
	// validation.
	var stored *dto.StoredFile
	if file, err := ctx.FormFile("chatFile"); err == nil && file != nil {
		saved, err := serverutils.SaveUpload(ctx, file, "chatFile", c.uploadCfg.Dir, c.uploadCfg.MaxFileBytes, c.uploadCfg.MaxFiles)
		if err != nil {
			return err
		}
		stored = &dto.StoredFile{
			Path:     saved.Path,
			Name:     saved.Name,
			Size:     saved.Size,
			MimeType: saved.MimeType,
		}
		req.HasFile = true
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), userId, chatId, &req, stored)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) AddParticipant(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)
	chatId, _ := uuid.Parse(ctx.Params("id"))

	var req dto.AddParticipantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.chatService.AddParticipant(ctx.Context(), userId, chatId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success add participant", nil))
}

func (c *chatController) RemoveParticipant(ctx *fiber.Ctx) error {
	callerId, role := callerIdentity(ctx)
	chatId, _ := uuid.Parse(ctx.Params("id"))
	targetId, _ := uuid.Parse(ctx.Params("userId"))

	if err := c.chatService.RemoveParticipant(ctx.Context(), callerId, role, chatId, targetId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove participant", nil))
}

func (c *chatController) Delete(ctx *fiber.Ctx) error {
	callerId, role := callerIdentity(ctx)
	chatId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.chatService.Delete(ctx.Context(), callerId, role, chatId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete chat", nil))
}

func (c *chatController) MarkRead(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)
	chatId, _ := uuid.Parse(ctx.Params("id"))

	if err := c.chatService.MarkRead(ctx.Context(), userId, chatId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark chat read", nil))
}
