package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/runcrewhq/crew-directory/internal/api/http"
	"github.com/runcrewhq/crew-directory/internal/api/http/handlers"
	"github.com/runcrewhq/crew-directory/internal/auth"
	"github.com/runcrewhq/crew-directory/internal/config"
	"github.com/runcrewhq/crew-directory/internal/domain"
	"github.com/runcrewhq/crew-directory/internal/observability"
	"github.com/runcrewhq/crew-directory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type fakeAccountRepo struct {
	byEmail map[string]*domain.CrewAccount
}

func (f *fakeAccountRepo) Create(_ context.Context, account *domain.CrewAccount) error {
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.CrewAccount, error) {
	for _, account := range f.byEmail {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*domain.CrewAccount, error) {
	if account, ok := f.byEmail[email]; ok {
		return account, nil
	}
	return nil, pgx.ErrNoRows
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			AdminUsername:       "admin",
			AdminPassword:       "hunter2",
			TokenSecret:         "test-secret",
			TokenTTLHours:       24,
			AdminCookieTTLHours: 2,
			BcryptCost:          4,
		},
	}
}

func newTestApp(t *testing.T) (*fiber.App, *service.AuthService) {
	t.Helper()

	cfg := testConfig()
	logger := zap.NewNop()

	hash, err := auth.HashPassword("crew-pass", cfg.Auth.BcryptCost)
	require.NoError(t, err)
	accounts := &fakeAccountRepo{byEmail: map[string]*domain.CrewAccount{
		"crew@example.com": {ID: "account-1", CrewID: "crew-1", Email: "crew@example.com", PasswordHash: hash},
	}}

	authService := service.NewAuthService(cfg, service.AuthDependencies{AccountRepo: accounts})
	crewService := service.NewCrewService(nil, nil, nil, 0, logger)
	editRequestService := service.NewEditRequestService(nil, nil, nil)
	geocodeService := service.NewGeocodeService(cfg.Geocode, nil, logger)

	app := fiber.New(fiber.Config{})
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler("test", "dev", nil, nil),
		Auth:         handlers.NewAuthHandler(authService, false),
		Crews:        handlers.NewCrewHandler(crewService, geocodeService, authService),
		EditRequests: handlers.NewEditRequestHandler(editRequestService, authService),
		Pages:        handlers.NewPagesHandler("test"),
	})
	return app, authService
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAdminLogin(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	t.Run("correct credentials set all three admin cookies", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/login", `{"username":"admin","password":"hunter2"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Success bool `json:"success"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.True(t, body.Success)

		cookies := resp.Cookies()
		for _, name := range []string{auth.CookieToken, auth.CookieAdminAuth, auth.CookieIsAdmin} {
			cookie := cookieByName(cookies, name)
			require.NotNil(t, cookie, "missing cookie %s", name)
			require.True(t, cookie.HttpOnly, "cookie %s must be httpOnly", name)
			require.NotEmpty(t, cookie.Value)
		}
		require.Equal(t, "true", cookieByName(cookies, auth.CookieAdminAuth).Value)
		require.Equal(t, "true", cookieByName(cookies, auth.CookieIsAdmin).Value)
	})

	t.Run("wrong credentials set no cookies", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/login", `{"username":"admin","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Empty(t, resp.Cookies())

		var body struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.False(t, body.Success)
		require.NotEmpty(t, body.Error)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/login", `{"username":"admin"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("method misuse rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/login", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestLogoutCookieClearing(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	t.Run("admin logout clears only the auth cookie", func(t *testing.T) {
		resp := postJSON(t, app, "/api/admin/logout", ``)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, auth.CookieAdminAuth, cookies[0].Name)
		require.Empty(t, cookies[0].Value)
	})

	t.Run("crew logout clears the full crew cookie set", func(t *testing.T) {
		resp := postJSON(t, app, "/api/crew/logout", ``)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cookies := resp.Cookies()
		require.Len(t, cookies, 4)
		for _, name := range []string{auth.CookieToken, auth.CookieCrewAuth, auth.CookieCrewID, auth.CookieCrewAccountID} {
			cookie := cookieByName(cookies, name)
			require.NotNil(t, cookie, "missing cleared cookie %s", name)
			require.Empty(t, cookie.Value)
		}
	})
}

func TestCrewLogin(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	t.Run("correct credentials set token and legacy crew cookies", func(t *testing.T) {
		resp := postJSON(t, app, "/api/crew/login", `{"email":"crew@example.com","password":"crew-pass"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cookies := resp.Cookies()
		require.NotNil(t, cookieByName(cookies, auth.CookieToken))
		require.Equal(t, "true", cookieByName(cookies, auth.CookieCrewAuth).Value)
		require.Equal(t, "crew-1", cookieByName(cookies, auth.CookieCrewID).Value)
		require.Equal(t, "account-1", cookieByName(cookies, auth.CookieCrewAccountID).Value)
	})

	t.Run("unknown account fails without cookies", func(t *testing.T) {
		resp := postJSON(t, app, "/api/crew/login", `{"email":"nobody@example.com","password":"x"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Empty(t, resp.Cookies())
	})

	t.Run("wrong password fails without cookies", func(t *testing.T) {
		resp := postJSON(t, app, "/api/crew/login", `{"email":"crew@example.com","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Empty(t, resp.Cookies())
	})
}

func TestVerifyEndpoint(t *testing.T) {
	t.Parallel()

	app, authService := newTestApp(t)

	getVerify := func(t *testing.T, cookies ...*http.Cookie) map[string]any {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	t.Run("no cookies reports unauthenticated", func(t *testing.T) {
		body := getVerify(t)
		require.Equal(t, false, body["authenticated"])
		require.NotContains(t, body, "method")
	})

	t.Run("signed admin token reports jwt method", func(t *testing.T) {
		token, _, err := authService.AdminLogin("admin", "hunter2")
		require.NoError(t, err)

		body := getVerify(t, &http.Cookie{Name: auth.CookieToken, Value: token})
		require.Equal(t, true, body["authenticated"])
		require.Equal(t, "jwt", body["method"])
		require.Equal(t, "admin", body["role"])
	})

	t.Run("legacy crew cookies report legacy method", func(t *testing.T) {
		body := getVerify(t,
			&http.Cookie{Name: auth.CookieCrewAuth, Value: "true"},
			&http.Cookie{Name: auth.CookieCrewID, Value: "crew-9"},
			&http.Cookie{Name: auth.CookieCrewAccountID, Value: "account-9"},
		)
		require.Equal(t, true, body["authenticated"])
		require.Equal(t, "legacy", body["method"])
		require.Equal(t, "crew", body["role"])
		require.Equal(t, "crew-9", body["crewId"])
	})

	t.Run("invalid token reports unauthenticated", func(t *testing.T) {
		body := getVerify(t, &http.Cookie{Name: auth.CookieToken, Value: "garbage"})
		require.Equal(t, false, body["authenticated"])
	})
}
