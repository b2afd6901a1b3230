package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/runcrewhq/crew-directory/internal/api/dto"
	"github.com/runcrewhq/crew-directory/internal/auth"
	"github.com/runcrewhq/crew-directory/internal/domain"
	"github.com/runcrewhq/crew-directory/internal/service"
	apperrors "github.com/runcrewhq/crew-directory/pkg/util"
)

// CrewHandler exposes the public directory, the crew dashboard data and the
// admin crew management endpoints.
type CrewHandler struct {
	crewService    *service.CrewService
	geocodeService *service.GeocodeService
	authService    *service.AuthService
}

// NewCrewHandler constructs handler.
func NewCrewHandler(crewService *service.CrewService, geocodeService *service.GeocodeService, authService *service.AuthService) *CrewHandler {
	return &CrewHandler{crewService: crewService, geocodeService: geocodeService, authService: authService}
}

// List handles GET /api/crews.
func (h *CrewHandler) List(c *fiber.Ctx) error {
	crews, err := h.crewService.List(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.CrewResponse, 0, len(crews))
	for i := range crews {
		resp = append(resp, crewResponse(&crews[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /api/crews/:id.
func (h *CrewHandler) Get(c *fiber.Ctx) error {
	crew, err := h.crewService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": crewResponse(crew)})
}

// Photos handles GET /api/crews/:id/photos.
func (h *CrewHandler) Photos(c *fiber.Ctx) error {
	photos, err := h.crewService.Photos(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": photoResponses(photos)})
}

// Geocode handles GET /api/geocode?q=.
func (h *CrewHandler) Geocode(c *fiber.Ctx) error {
	raw, err := h.geocodeService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

// Me handles GET /api/crew/me: the dashboard profile of the session's crew.
// Returns 404 when the session's crew no longer exists in the store.
func (h *CrewHandler) Me(c *fiber.Ctx) error {
	session, err := h.requireCrewSession(c)
	if err != nil {
		return err
	}
	crew, err := h.crewService.Get(c.Context(), session.CrewID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": crewResponse(crew)})
}

// MyPhotos handles GET /api/crew/photos.
func (h *CrewHandler) MyPhotos(c *fiber.Ctx) error {
	session, err := h.requireCrewSession(c)
	if err != nil {
		return err
	}
	photos, err := h.crewService.Photos(c.Context(), session.CrewID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": photoResponses(photos)})
}

// CreateCrew handles POST /api/admin/crews.
func (h *CrewHandler) CreateCrew(c *fiber.Ctx) error {
	if _, err := h.requireAdminSession(c); err != nil {
		return err
	}
	var req dto.CrewUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}
	crew := crewFromRequest(req)
	if err := h.crewService.Create(c.Context(), crew); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": crewResponse(crew)})
}

// UpdateCrew handles PUT /api/admin/crews/:id.
func (h *CrewHandler) UpdateCrew(c *fiber.Ctx) error {
	if _, err := h.requireAdminSession(c); err != nil {
		return err
	}
	var req dto.CrewUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}
	crew := crewFromRequest(req)
	crew.ID = c.Params("id")
	if err := h.crewService.Update(c.Context(), crew); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": crewResponse(crew)})
}

// DeleteCrew handles DELETE /api/admin/crews/:id.
func (h *CrewHandler) DeleteCrew(c *fiber.Ctx) error {
	if _, err := h.requireAdminSession(c); err != nil {
		return err
	}
	if err := h.crewService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *CrewHandler) requireCrewSession(c *fiber.Ctx) (domain.Session, error) {
	session := h.authService.ResolveSession(auth.CookiesFromCtx(c))
	if !session.IsCrew() {
		return domain.Session{}, apperrors.NewUnauthorized("crew session required")
	}
	return session, nil
}

func (h *CrewHandler) requireAdminSession(c *fiber.Ctx) (domain.Session, error) {
	session := h.authService.ResolveSession(auth.CookiesFromCtx(c))
	if !session.IsAdmin() {
		return domain.Session{}, apperrors.NewUnauthorized("admin session required")
	}
	return session, nil
}

func crewFromRequest(req dto.CrewUpsertRequest) *domain.Crew {
	return &domain.Crew{
		Name:        req.Name,
		Description: req.Description,
		Instagram:   req.Instagram,
		LogoURL:     req.LogoURL,
		FoundedOn:   req.FoundedOn,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
}

func crewResponse(crew *domain.Crew) dto.CrewResponse {
	return dto.CrewResponse{
		ID:          crew.ID,
		Name:        crew.Name,
		Description: crew.Description,
		Instagram:   crew.Instagram,
		LogoURL:     crew.LogoURL,
		FoundedOn:   crew.FoundedOn,
		Latitude:    crew.Latitude,
		Longitude:   crew.Longitude,
	}
}

func photoResponses(photos []domain.CrewPhoto) []dto.PhotoResponse {
	resp := make([]dto.PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		resp = append(resp, dto.PhotoResponse{
			ID:       photo.ID,
			URL:      photo.URL,
			Caption:  photo.Caption,
			Position: photo.Position,
		})
	}
	return resp
}
