package events

import (
	"time"

	"github.com/runcrewhq/crew-directory/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEditRequestSubmitted EventType = "edit_request_submitted"
	EventEditRequestCancelled EventType = "edit_request_cancelled"
	EventEditRequestApproved  EventType = "edit_request_approved"
	EventEditRequestRejected  EventType = "edit_request_rejected"
	EventCrewUpdated          EventType = "crew_updated"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role      domain.Role `json:"role"`
	SubjectID string      `json:"subject_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	CrewID    string      `json:"crew_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EditRequestPayload payload.
type EditRequestPayload struct {
	RequestID string                   `json:"request_id"`
	Status    domain.EditRequestStatus `json:"status"`
}

// CrewUpdatedPayload payload.
type CrewUpdatedPayload struct {
	Fields []string `json:"fields"`
}
