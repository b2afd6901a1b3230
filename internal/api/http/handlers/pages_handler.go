package handlers

import "github.com/gofiber/fiber/v2"

// PagesHandler serves the HTML shells behind the route guard. Rendering is a
// client-side concern; these exist so the guarded page paths are real routes.
type PagesHandler struct {
	appName string
}

// NewPagesHandler returns a new handler instance.
func NewPagesHandler(appName string) *PagesHandler {
	return &PagesHandler{appName: appName}
}

// Home handles GET /.
func (h *PagesHandler) Home(c *fiber.Ctx) error {
	return h.shell(c, "directory")
}

// AdminLogin handles GET /admin/login.
func (h *PagesHandler) AdminLogin(c *fiber.Ctx) error {
	return h.shell(c, "admin-login")
}

// AdminConsole handles GET /admin.
func (h *PagesHandler) AdminConsole(c *fiber.Ctx) error {
	return h.shell(c, "admin")
}

// CrewLogin handles GET /crew/login.
func (h *PagesHandler) CrewLogin(c *fiber.Ctx) error {
	return h.shell(c, "crew-login")
}

// CrewDashboard handles GET /crew/dashboard.
func (h *PagesHandler) CrewDashboard(c *fiber.Ctx) error {
	return h.shell(c, "crew-dashboard")
}

func (h *PagesHandler) shell(c *fiber.Ctx, page string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(
		`<!doctype html><html><head><title>` + h.appName + `</title></head>` +
			`<body><div id="app" data-page="` + page + `"></div></body></html>`)
}
