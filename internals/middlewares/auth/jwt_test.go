// file: internals/middlewares/auth/jwt_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/configs"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

func TestAuthJWT(t *testing.T) {
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	var gotID uuid.UUID
	var gotRole string
	app.Get("/p", AuthJWT(AuthJWTOpts{Secret: "test-secret", AllowCookieFallback: true}), func(c *fiber.Ctx) error {
		gotID, _ = c.Locals("user_id").(uuid.UUID)
		gotRole, _ = c.Locals("user_role").(string)
		return c.SendString("ok")
	})

	userID := uuid.New()
	token, err := helperAuth.MakeAccessToken(userID, "staff", time.Minute)
	require.NoError(t, err)

	t.Run("bearer token accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/p", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, "staff", gotRole)
	})

	t.Run("cookie fallback accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/p", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/p", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/p", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired, err := helperAuth.MakeAccessToken(userID, "staff", -time.Minute)
		require.NoError(t, err)
		req := httptest.NewRequest("GET", "/p", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
