package dto

import (
	"time"

	"github.com/runcrewhq/crew-directory/internal/domain"
)

// EditRequestCreateRequest proposes profile changes; nil fields are ignored.
type EditRequestCreateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Instagram   *string `json:"instagram"`
	LogoURL     *string `json:"logo_url"`
}

// Changes converts the request into the domain payload.
func (r EditRequestCreateRequest) Changes() domain.CrewChanges {
	return domain.CrewChanges{
		Name:        r.Name,
		Description: r.Description,
		Instagram:   r.Instagram,
		LogoURL:     r.LogoURL,
	}
}

// EditRequestResponse is the API shape of an edit request.
type EditRequestResponse struct {
	ID        string                   `json:"id"`
	CrewID    string                   `json:"crew_id"`
	Status    domain.EditRequestStatus `json:"status"`
	Changes   any                      `json:"changes"`
	CreatedAt time.Time                `json:"created_at"`
	DecidedAt *time.Time               `json:"decided_at,omitempty"`
}
