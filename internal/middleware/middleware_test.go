package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resto-pos-backend/domain"
	"resto-pos-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T, jwtService jwt.JWTService, roles ...string) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", NewMiddleware().AuthMiddleware(jwtService, roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"business_id": c.Locals("business_id"),
			"role":        c.Locals("role"),
		})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newAuthApp(t, jwt.NewJWTService("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	app := newAuthApp(t, jwt.NewJWTService("test-secret"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	app := newAuthApp(t, jwtService)

	token, err := jwtService.GenerateToken(12, 3, domain.RoleSalesperson)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareEnforcesRole(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	app := newAuthApp(t, jwtService, domain.RoleAdmin)

	token, err := jwtService.GenerateToken(12, 3, domain.RoleSalesperson)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareAllowsMatchingRole(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret")
	app := newAuthApp(t, jwtService, domain.RoleAdmin)

	token, err := jwtService.GenerateToken(1, 3, domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
