package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/runcrewhq/crew-directory/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Crews        *handlers.CrewHandler
	EditRequests *handlers.EditRequestHandler
	Pages        *handlers.PagesHandler
}

// RegisterRoutes wires HTTP routes. The route guard runs globally (see
// RegisterMiddlewares), so the page routes here need no per-route auth.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// guarded pages
	app.Get("/", cfg.Pages.Home)
	app.Get("/admin/login", cfg.Pages.AdminLogin)
	app.Get("/admin", cfg.Pages.AdminConsole)
	app.Get("/crew/login", cfg.Pages.CrewLogin)
	app.Get("/crew/dashboard", cfg.Pages.CrewDashboard)

	api := app.Group("/api")

	api.Post("/admin/login", cfg.Auth.AdminLogin)
	api.Post("/admin/logout", cfg.Auth.AdminLogout)
	api.Post("/crew/login", cfg.Auth.CrewLogin)
	api.Post("/crew/logout", cfg.Auth.CrewLogout)
	api.Get("/auth/verify", cfg.Auth.Verify)

	api.Get("/crews", cfg.Crews.List)
	api.Get("/crews/:id", cfg.Crews.Get)
	api.Get("/crews/:id/photos", cfg.Crews.Photos)
	api.Get("/geocode", cfg.Crews.Geocode)

	api.Get("/crew/me", cfg.Crews.Me)
	api.Get("/crew/photos", cfg.Crews.MyPhotos)
	api.Post("/crew/edit-requests", cfg.EditRequests.Submit)
	api.Get("/crew/edit-requests", cfg.EditRequests.ListMine)
	api.Delete("/crew/edit-requests/:id", cfg.EditRequests.Cancel)

	api.Get("/admin/edit-requests", cfg.EditRequests.ListForAdmin)
	api.Post("/admin/edit-requests/:id/approve", cfg.EditRequests.Approve)
	api.Post("/admin/edit-requests/:id/reject", cfg.EditRequests.Reject)
	api.Post("/admin/crews", cfg.Crews.CreateCrew)
	api.Put("/admin/crews/:id", cfg.Crews.UpdateCrew)
	api.Delete("/admin/crews/:id", cfg.Crews.DeleteCrew)
}
