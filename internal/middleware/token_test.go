package middleware

import (
	"GoFinance/internal/entity"
	jwtPkg "GoFinance/pkg/jwt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	log := logrus.New()
	log.SetOutput(io.Discard)
	m := New(log)

	app := fiber.New()
	app.Get("/protected", m.NewTokenMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(entity.UserLoginData)
		return c.JSON(fiber.Map{"id": user.ID})
	})
	return app
}

func TestTokenMiddlewareValidToken(t *testing.T) {
	app := newTokenTestApp(t)

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":    "user-1",
		"name":  "Rodrigo",
		"email": "rodrigo@example.com",
	}, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTokenMiddlewareMissingHeader(t *testing.T) {
	app := newTokenTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenMiddlewareNonStringClaims(t *testing.T) {
	app := newTokenTestApp(t)

	// Validly signed, but the id claim is a number. Must be rejected as
	// unauthorized, never dereferenced as a string.
	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":    12345,
		"name":  "Rodrigo",
		"email": "rodrigo@example.com",
	}, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenMiddlewareMissingNameClaim(t *testing.T) {
	app := newTokenTestApp(t)

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":    "user-1",
		"email": "rodrigo@example.com",
	}, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
