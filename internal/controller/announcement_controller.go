package controller

import (
	"acadmix-be/internal/dto"
	"acadmix-be/internal/entity"
	"acadmix-be/internal/pkg/serverutils"
	"acadmix-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAnnouncementController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
}

type announcementController struct {
	announcementService service.IAnnouncementService
}

func NewAnnouncementController(announcementService service.IAnnouncementService) IAnnouncementController {
	return &announcementController{
		announcementService: announcementService,
	}
}

func (c *announcementController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/announcement/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post(":id/read", c.MarkRead)

	adminOnly := serverutils.RequireRole(string(entity.UserRoleAdmin))
	h.Post("", adminOnly, c.Create)
	h.Put(":id", adminOnly, c.Update)
	h.Delete(":id", adminOnly, c.Delete)
}

func (c *announcementController) Create(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	var req dto.CreateAnnouncementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.announcementService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create announcement", res))
}

func (c *announcementController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateAnnouncementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id, _ = uuid.Parse(ctx.Params("id"))

	res, err := c.announcementService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update announcement", res))
}

func (c *announcementController) Delete(ctx *fiber.Ctx) error {
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.announcementService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete announcement", nil))
}

func (c *announcementController) List(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	var req dto.AnnouncementListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.announcementService.List(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list announcements", res))
}

func (c *announcementController) MarkRead(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.announcementService.MarkRead(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark announcement read", nil))
}
