package controller

import (
	"acadmix-be/internal/config"
	"acadmix-be/internal/dto"
	"acadmix-be/internal/pkg/serverutils"
	"acadmix-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	UploadAvatar(ctx *fiber.Ctx) error
	ListTeachers(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	uploadCfg   config.UploadConfig
}

func NewUserController(userService service.IUserService, uploadCfg config.UploadConfig) IUserController {
	return &userController{
		userService: userService,
		uploadCfg:   uploadCfg,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("profile", c.Profile)
	h.Put("profile", c.UpdateProfile)
	h.Post("profile/avatar", c.UploadAvatar)
	h.Get("teachers", c.ListTeachers)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *userController) UploadAvatar(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	file, err := ctx.FormFile("profileImage")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "profileImage file is required")
	}

	saved, err := serverutils.SaveUpload(ctx, file, "profileImage", c.uploadCfg.Dir, c.uploadCfg.MaxFileBytes, c.uploadCfg.MaxFiles)
	if err != nil {
		return err
	}

	avatarURL := "/" + saved.Path
	if err := c.userService.UpdateAvatar(ctx.Context(), userId, avatarURL); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload avatar", dto.UploadImageResponse{
		AvatarURL: avatarURL,
	}))
}

func (c *userController) ListTeachers(ctx *fiber.Ctx) error {
	var req dto.TeacherListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.userService.ListTeachers(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list teachers", res))
}
