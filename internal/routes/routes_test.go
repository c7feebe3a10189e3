package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamhub-backend/internal/auth"
	"streamhub-backend/internal/handlers"
	"streamhub-backend/internal/middleware"
	"streamhub-backend/internal/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRouterApp wires the full route table behind the session guard. The
// guarded requests below never reach a handler, so no services are needed.
func newRouterApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	tokens := auth.NewTokenManager("secret")
	protected := middleware.Protected(tokens, "accessToken")

	Setup(app,
		handlers.NewMovieHandler(nil, logger),
		handlers.NewSerieHandler(nil, logger),
		handlers.NewGenreHandler(nil, logger),
		handlers.NewCollectionHandler(nil, logger),
		handlers.NewAuthHandler(nil, "accessToken", logger),
		handlers.NewBillingHandler(nil, logger),
		realtime.NewHub(logger),
		protected,
	)
	return app
}

func TestCatalogWritesRequireSession(t *testing.T) {
	app := newRouterApp()

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/movies"},
		{http.MethodPut, "/api/v1/movies/00000000-0000-4000-8000-000000000000"},
		{http.MethodDelete, "/api/v1/movies/00000000-0000-4000-8000-000000000000"},
		{http.MethodPost, "/api/v1/series"},
		{http.MethodPut, "/api/v1/series/show"},
		{http.MethodDelete, "/api/v1/series/show"},
		{http.MethodPost, "/api/v1/series/show/seasons"},
		{http.MethodPut, "/api/v1/series/show/seasons/season-1"},
		{http.MethodDelete, "/api/v1/series/show/seasons/season-1"},
		{http.MethodPost, "/api/v1/series/show/seasons/season-1/episodes"},
		{http.MethodPut, "/api/v1/series/show/seasons/season-1/episodes/pilot"},
		{http.MethodDelete, "/api/v1/series/show/seasons/season-1/episodes/pilot"},
	}

	for _, r := range requests {
		req := httptest.NewRequest(r.method, r.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", r.method, r.path)
	}
}

func TestLogoutRequiresSession(t *testing.T) {
	app := newRouterApp()

	for _, path := range []string{"/api/v1/auth/logout", "/api/v1/admin/auth/logout"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestReactionsRequireSession(t *testing.T) {
	app := newRouterApp()

	for _, path := range []string{
		"/api/v1/movies/00000000-0000-4000-8000-000000000000/like",
		"/api/v1/series/show/dislike",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}
