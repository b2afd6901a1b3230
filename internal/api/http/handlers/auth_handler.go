package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/runcrewhq/crew-directory/internal/api/dto"
	"github.com/runcrewhq/crew-directory/internal/auth"
	"github.com/runcrewhq/crew-directory/internal/service"
)

// AuthHandler exposes the login/logout/verify endpoints for both roles.
type AuthHandler struct {
	authService   *service.AuthService
	secureCookies bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// AdminLogin handles POST /api/admin/login. On success it sets the signed
// token plus the two legacy admin cookies, all with the admin cookie TTL.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	token, _, err := h.authService.AdminLogin(req.Username, req.Password)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(dto.SuccessResponse{
			Success: false,
			Error:   "invalid credentials",
		})
	}

	ttl := h.authService.AdminCookieTTL()
	auth.SetSessionCookie(c, auth.CookieToken, token, ttl, h.secureCookies)
	auth.SetSessionCookie(c, auth.CookieAdminAuth, "true", ttl, h.secureCookies)
	auth.SetSessionCookie(c, auth.CookieIsAdmin, "true", ttl, h.secureCookies)

	return c.JSON(dto.SuccessResponse{Success: true})
}

// AdminLogout handles POST /api/admin/logout. It clears only the `auth`
// cookie, leaving `auth_token` and `is_admin` behind. Legacy behavior kept
// as-is: the route guard keys on `auth`, so the console still locks.
func (h *AuthHandler) AdminLogout(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c, auth.CookieAdminAuth)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// CrewLogin handles POST /api/crew/login. Success sets the signed token and
// the full legacy crew cookie triple with the token lifetime.
func (h *AuthHandler) CrewLogin(c *fiber.Ctx) error {
	var req dto.CrewLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	account, token, _, err := h.authService.CrewLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(dto.SuccessResponse{
			Success: false,
			Error:   "invalid credentials",
		})
	}

	ttl := h.authService.TokenTTL()
	auth.SetSessionCookie(c, auth.CookieToken, token, ttl, h.secureCookies)
	auth.SetSessionCookie(c, auth.CookieCrewAuth, "true", ttl, h.secureCookies)
	auth.SetSessionCookie(c, auth.CookieCrewID, account.CrewID, ttl, h.secureCookies)
	auth.SetSessionCookie(c, auth.CookieCrewAccountID, account.ID, ttl, h.secureCookies)

	return c.JSON(dto.SuccessResponse{Success: true})
}

// CrewLogout handles POST /api/crew/logout, clearing the full crew cookie set.
func (h *AuthHandler) CrewLogout(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c, auth.CookieToken)
	auth.ClearSessionCookie(c, auth.CookieCrewAuth)
	auth.ClearSessionCookie(c, auth.CookieCrewID)
	auth.ClearSessionCookie(c, auth.CookieCrewAccountID)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Verify handles GET /api/auth/verify, a read-only introspection endpoint for
// client-side UI gating.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	session := h.authService.ResolveSession(auth.CookiesFromCtx(c))
	if !session.Authenticated {
		return c.JSON(dto.VerifyResponse{Authenticated: false})
	}
	return c.JSON(dto.VerifyResponse{
		Authenticated: true,
		Method:        string(session.Method),
		CrewID:        session.CrewID,
		Role:          string(session.Role),
	})
}
