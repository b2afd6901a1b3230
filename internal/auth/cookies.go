package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cookie names making up the session contract. CookieToken carries the signed
// token; the rest are the unsigned legacy cookies retained for backward
// compatibility with the pre-token scheme.
const (
	CookieToken         = "auth_token"
	CookieAdminAuth     = "auth"
	CookieIsAdmin       = "is_admin"
	CookieCrewAuth      = "crew_auth"
	CookieCrewID        = "crew_id"
	CookieCrewAccountID = "crew_account_id"
)

// SetSessionCookie writes a session cookie scoped to the whole site.
func SetSessionCookie(c *fiber.Ctx, name, value string, ttl time.Duration, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearSessionCookie expires a cookie immediately.
func ClearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

// CookieSet is a snapshot of a request's cookies.
type CookieSet map[string]string

// CookiesFromCtx collects all request cookies into a CookieSet.
func CookiesFromCtx(c *fiber.Ctx) CookieSet {
	cookies := CookieSet{}
	c.Request().Header.VisitAllCookie(func(key, value []byte) {
		cookies[string(key)] = string(value)
	})
	return cookies
}
