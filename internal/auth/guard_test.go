package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Use(RouteGuard())

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/admin/login", ok)
	app.Get("/admin", ok)
	app.Get("/admin/edit-requests", ok)
	app.Get("/crew/login", ok)
	app.Get("/crew/dashboard", ok)
	app.Get("/crew/dashboard/photos", ok)
	return app
}

func TestRouteGuardAdminPaths(t *testing.T) {
	t.Parallel()

	app := newGuardedApp()

	t.Run("login page reachable without cookies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("console redirects without auth cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/edit-requests", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/admin/login", resp.Header.Get("Location"))
	})

	t.Run("auth cookie allows regardless of token validity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/edit-requests", nil)
		req.AddCookie(&http.Cookie{Name: CookieAdminAuth, Value: "true"})
		req.AddCookie(&http.Cookie{Name: CookieToken, Value: "garbage-token"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("valid token alone does not pass the guard", func(t *testing.T) {
		codec := NewTokenCodec("test-secret", 24)
		token, _, err := codec.Issue(AdminSubjectID, "", true)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: CookieToken, Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/admin/login", resp.Header.Get("Location"))
	})

	t.Run("auth cookie must be the exact literal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: CookieAdminAuth, Value: "TRUE"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusFound, resp.StatusCode)
	})
}

func TestRouteGuardCrewPaths(t *testing.T) {
	t.Parallel()

	app := newGuardedApp()

	t.Run("dashboard allows with crew_auth cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/crew/dashboard/photos", nil)
		req.AddCookie(&http.Cookie{Name: CookieCrewAuth, Value: "true"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("dashboard redirects without crew_auth cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/crew/dashboard/photos", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/crew/login", resp.Header.Get("Location"))
	})

	t.Run("crew login page reachable without cookies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/crew/login", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestRouteGuardUngatedPaths(t *testing.T) {
	t.Parallel()

	app := newGuardedApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
