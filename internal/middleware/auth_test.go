package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamhub-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(tokens *auth.TokenManager) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", Protected(tokens, "accessToken"), func(c *fiber.Ctx) error {
		claims := ClaimsFromCtx(c)
		return c.SendString(claims.Email)
	})
	return app
}

func TestProtectedRejectsMissingCookie(t *testing.T) {
	tokens := auth.NewTokenManager("secret")
	app := newTestApp(tokens)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsGarbageToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret")
	app := newTestApp(tokens)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "not-a-token"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsForeignSignature(t *testing.T) {
	signer := auth.NewTokenManager("other-secret")
	token, err := signer.Generate(&auth.TokenClaims{UserID: "u1", Email: "alice@example.com"})
	require.NoError(t, err)

	tokens := auth.NewTokenManager("secret")
	app := newTestApp(tokens)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedPassesClaims(t *testing.T) {
	tokens := auth.NewTokenManager("secret")
	token, err := tokens.Generate(&auth.TokenClaims{UserID: "u1", Email: "alice@example.com"})
	require.NoError(t, err)

	app := newTestApp(tokens)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", string(body))
}
