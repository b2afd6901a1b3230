package domain

import (
	"encoding/json"
	"time"
)

// EditRequestStatus represents lifecycle states for a proposed profile change.
type EditRequestStatus string

const (
	EditRequestStatusPending  EditRequestStatus = "pending"
	EditRequestStatusApproved EditRequestStatus = "approved"
	EditRequestStatusRejected EditRequestStatus = "rejected"
)

// EditRequest is a crew-submitted profile change awaiting admin review.
type EditRequest struct {
	ID        string
	CrewID    string
	Status    EditRequestStatus
	Changes   json.RawMessage
	CreatedAt time.Time
	DecidedAt *time.Time
}

// CrewChanges is the payload shape of an edit request. Nil fields are left
// untouched when the request is approved.
type CrewChanges struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}
