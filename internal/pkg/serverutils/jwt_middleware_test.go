package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signTestToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "6f1b0a52-9a1d-4b0e-8f35-0c6f6f1e2d44",
		"role":    "student",
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newIdentityEchoApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", mw, func(ctx *fiber.Ctx) error {
		userId, _ := ctx.Locals("user_id").(string)
		role, _ := ctx.Locals("role").(string)
		return ctx.JSON(fiber.Map{"user_id": userId, "role": role})
	})
	return app
}

func TestOptionalJwtMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newIdentityEchoApp(OptionalJwtMiddleware)

	t.Run("anonymous request passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("garbage token treated as anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("valid token populates identity", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "test-secret"))

		var seen string
		app := fiber.New()
		app.Get("/whoami", OptionalJwtMiddleware, func(ctx *fiber.Ctx) error {
			seen, _ = ctx.Locals("user_id").(string)
			return ctx.SendStatus(fiber.StatusOK)
		})
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "6f1b0a52-9a1d-4b0e-8f35-0c6f6f1e2d44", seen)
	})
}

func TestJwtMiddlewareRejectsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newIdentityEchoApp(JwtMiddleware)

	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
