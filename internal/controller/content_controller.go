package controller

import (
	"acadmix-be/internal/config"
	"acadmix-be/internal/dto"
	"acadmix-be/internal/pkg/serverutils"
	"acadmix-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
	ToggleLike(ctx *fiber.Ctx) error
	ToggleBookmark(ctx *fiber.Ctx) error
	Bookmarks(ctx *fiber.Ctx) error
}

type contentController struct {
	contentService service.IContentService
	uploadCfg      config.UploadConfig
}

func NewContentController(contentService service.IContentService, uploadCfg config.UploadConfig) IContentController {
	return &contentController{
		contentService: contentService,
		uploadCfg:      uploadCfg,
	}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	// Listing and detail are public; visibility narrows to published+approved
	// when no token is attached.
	h.Get("bookmarks", serverutils.JwtMiddleware, c.Bookmarks)
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Get("", serverutils.OptionalJwtMiddleware, c.List)
	h.Get(":id", serverutils.OptionalJwtMiddleware, c.Show)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
	h.Get(":id/download", serverutils.JwtMiddleware, c.Download)
	h.Post(":id/like", serverutils.JwtMiddleware, c.ToggleLike)
	h.Post(":id/bookmark", serverutils.JwtMiddleware, c.ToggleBookmark)
}

func (c *contentController) Create(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var req dto.CreateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Videos reference an external URL; everything else carries a file part.
	var stored *dto.StoredFile
	if file, err := ctx.FormFile("contentFile"); err == nil && file != nil {
		saved, err := serverutils.SaveUpload(ctx, file, "contentFile", c.uploadCfg.Dir, c.uploadCfg.MaxFileBytes, c.uploadCfg.MaxFiles)
		if err != nil {
			return err
		}
		stored = &dto.StoredFile{
			Path:     saved.Path,
			Name:     saved.Name,
			Size:     saved.Size,
			MimeType: saved.MimeType,
		}
	}

	res, err := c.contentService.Create(ctx.Context(), userId, role, &req, stored)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create content", res))
}

func (c *contentController) List(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var req dto.ContentListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.contentService.List(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list content", res))
}

func (c *contentController) Show(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.contentService.Get(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show content", res))
}

func (c *contentController) Update(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)

	var req dto.UpdateContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	req.Id, _ = uuid.Parse(ctx.Params("id"))

	res, err := c.contentService.Update(ctx.Context(), userId, role, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update content", res))
}

func (c *contentController) Delete(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.contentService.Delete(ctx.Context(), userId, role, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete content", nil))
}

func (c *contentController) Download(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	content, err := c.contentService.Download(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}

	name := content.Title
	if content.FileName != nil {
		name = *content.FileName
	}
	return ctx.Download(*content.FilePath, name)
}

func (c *contentController) ToggleLike(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.contentService.ToggleLike(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle like", res))
}

func (c *contentController) ToggleBookmark(ctx *fiber.Ctx) error {
	userId, role := callerIdentity(ctx)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.contentService.ToggleBookmark(ctx.Context(), userId, role, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle bookmark", res))
}

func (c *contentController) Bookmarks(ctx *fiber.Ctx) error {
	userId, _ := callerIdentity(ctx)

	res, err := c.contentService.Bookmarks(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list bookmarks", res))
}

// callerIdentity reads the authenticated user from request locals.
func callerIdentity(ctx *fiber.Ctx) (uuid.UUID, string) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)
	return userId, role
}
