package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole guards a route group behind one or more roles. Must run after
// JwtMiddleware, which sets the "role" local.
func RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Insufficient permissions"))
	}
}
