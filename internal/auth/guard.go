package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	adminLoginPath = "/admin/login"
	crewLoginPath  = "/crew/login"
)

// RouteGuard gates the admin console and the crew dashboard page paths. It
// checks only the unsigned legacy boolean cookies, never the signed token:
// the guard is a fast path with no crypto and no store access, and a client
// holding only a valid token is still redirected to login. API handlers get
// their identity from the Resolver instead.
func RouteGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// The login pages stay reachable while logged out.
		if path == adminLoginPath || path == crewLoginPath {
			return c.Next()
		}

		if strings.HasPrefix(path, "/admin") {
			if c.Cookies(CookieAdminAuth) == "true" {
				return c.Next()
			}
			return c.Redirect(adminLoginPath, fiber.StatusFound)
		}

		if strings.HasPrefix(path, "/crew/dashboard") {
			if c.Cookies(CookieCrewAuth) == "true" {
				return c.Next()
			}
			return c.Redirect(crewLoginPath, fiber.StatusFound)
		}

		return c.Next()
	}
}
