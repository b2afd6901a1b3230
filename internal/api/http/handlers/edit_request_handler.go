package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/runcrewhq/crew-directory/internal/api/dto"
	"github.com/runcrewhq/crew-directory/internal/auth"
	"github.com/runcrewhq/crew-directory/internal/domain"
	"github.com/runcrewhq/crew-directory/internal/service"
	apperrors "github.com/runcrewhq/crew-directory/pkg/util"
)

// EditRequestHandler exposes the crew-side and admin-side edit request
// endpoints.
type EditRequestHandler struct {
	editRequests *service.EditRequestService
	authService  *service.AuthService
}

// NewEditRequestHandler constructs handler.
func NewEditRequestHandler(editRequests *service.EditRequestService, authService *service.AuthService) *EditRequestHandler {
	return &EditRequestHandler{editRequests: editRequests, authService: authService}
}

// Submit handles POST /api/crew/edit-requests.
func (h *EditRequestHandler) Submit(c *fiber.Ctx) error {
	session, err := h.requireCrew(c)
	if err != nil {
		return err
	}
	var req dto.EditRequestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	request, err := h.editRequests.Submit(c.Context(), session.CrewID, req.Changes())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": editRequestResponse(request)})
}

// ListMine handles GET /api/crew/edit-requests.
func (h *EditRequestHandler) ListMine(c *fiber.Ctx) error {
	session, err := h.requireCrew(c)
	if err != nil {
		return err
	}
	requests, err := h.editRequests.ListForCrew(c.Context(), session.CrewID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": editRequestResponses(requests)})
}

// Cancel handles DELETE /api/crew/edit-requests/:id. Requests owned by other
// crews read as not-found.
func (h *EditRequestHandler) Cancel(c *fiber.Ctx) error {
	session, err := h.requireCrew(c)
	if err != nil {
		return err
	}
	if err := h.editRequests.Cancel(c.Context(), session.CrewID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ListForAdmin handles GET /api/admin/edit-requests?status=.
func (h *EditRequestHandler) ListForAdmin(c *fiber.Ctx) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}
	status := domain.EditRequestStatus(c.Query("status", string(domain.EditRequestStatusPending)))
	switch status {
	case domain.EditRequestStatusPending, domain.EditRequestStatusApproved, domain.EditRequestStatusRejected:
	default:
		return fiber.NewError(http.StatusBadRequest, "unknown status")
	}
	requests, err := h.editRequests.ListByStatus(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": editRequestResponses(requests)})
}

// Approve handles POST /api/admin/edit-requests/:id/approve.
func (h *EditRequestHandler) Approve(c *fiber.Ctx) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}
	request, err := h.editRequests.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": editRequestResponse(request)})
}

// Reject handles POST /api/admin/edit-requests/:id/reject.
func (h *EditRequestHandler) Reject(c *fiber.Ctx) error {
	if err := h.requireAdmin(c); err != nil {
		return err
	}
	request, err := h.editRequests.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": editRequestResponse(request)})
}

func (h *EditRequestHandler) requireCrew(c *fiber.Ctx) (domain.Session, error) {
	session := h.authService.ResolveSession(auth.CookiesFromCtx(c))
	if !session.IsCrew() {
		return domain.Session{}, apperrors.NewUnauthorized("crew session required")
	}
	return session, nil
}

func (h *EditRequestHandler) requireAdmin(c *fiber.Ctx) error {
	session := h.authService.ResolveSession(auth.CookiesFromCtx(c))
	if !session.IsAdmin() {
		return apperrors.NewUnauthorized("admin session required")
	}
	return nil
}

func editRequestResponse(request *domain.EditRequest) dto.EditRequestResponse {
	var changes any
	if len(request.Changes) > 0 {
		_ = json.Unmarshal(request.Changes, &changes)
	}
	return dto.EditRequestResponse{
		ID:        request.ID,
		CrewID:    request.CrewID,
		Status:    request.Status,
		Changes:   changes,
		CreatedAt: request.CreatedAt,
		DecidedAt: request.DecidedAt,
	}
}

func editRequestResponses(requests []domain.EditRequest) []dto.EditRequestResponse {
	resp := make([]dto.EditRequestResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, editRequestResponse(&requests[i]))
	}
	return resp
}
