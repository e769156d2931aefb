package apiv1

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"talentdesk-backend/config"
)

func initAuthTestConfig() {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	config.Conf = conf
}

func TestAuthRoutes(t *testing.T) {
	initAuthTestConfig()
	app := fiber.New()
	InitAuthApiRouters(app)

	t.Run(`refresh reachable without a bearer token`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/auth/refresh-token", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		// the request must be rejected by the handler's validation, not by
		// the bearer guard
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "refresh token is required")
	})

	t.Run(`me blocked without a bearer token`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/auth/me", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "Missing or malformed JWT")
	})
}
