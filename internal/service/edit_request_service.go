package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/runcrewhq/crew-directory/internal/domain"
	"github.com/runcrewhq/crew-directory/internal/events"
	"github.com/runcrewhq/crew-directory/internal/repository"
	apperrors "github.com/runcrewhq/crew-directory/pkg/util"
)

// EditRequestService handles the crew-submitted profile change workflow:
// submit, list, cancel (crew side) and approve/reject (admin side).
type EditRequestService struct {
	requests   repository.EditRequestRepository
	crews      repository.CrewRepository
	dispatcher events.Dispatcher
}

// NewEditRequestService builds the service.
func NewEditRequestService(requests repository.EditRequestRepository, crews repository.CrewRepository, dispatcher events.Dispatcher) *EditRequestService {
	return &EditRequestService{requests: requests, crews: crews, dispatcher: dispatcher}
}

// Submit records a pending change proposal for the caller's crew.
func (s *EditRequestService) Submit(ctx context.Context, crewID string, changes domain.CrewChanges) (*domain.EditRequest, error) {
	if changes == (domain.CrewChanges{}) {
		return nil, apperrors.NewValidationError("no changes proposed", nil)
	}
	if _, err := s.crews.GetByID(ctx, crewID); err != nil {
		return nil, apperrors.MapError(err)
	}

	payload, err := json.Marshal(changes)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	request := &domain.EditRequest{
		ID:      uuid.NewString(),
		CrewID:  crewID,
		Status:  domain.EditRequestStatusPending,
		Changes: payload,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}

	s.publish(ctx, events.EventEditRequestSubmitted, request, domain.RoleCrew, crewID)
	return request, nil
}

// ListForCrew returns the caller's own requests, newest first.
func (s *EditRequestService) ListForCrew(ctx context.Context, crewID string) ([]domain.EditRequest, error) {
	requests, err := s.requests.ListByCrew(ctx, crewID)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}
	return requests, nil
}

// ListByStatus returns requests in a given status for the admin console.
func (s *EditRequestService) ListByStatus(ctx context.Context, status domain.EditRequestStatus) ([]domain.EditRequest, error) {
	requests, err := s.requests.ListByStatus(ctx, status)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure(err)
	}
	return requests, nil
}

// Cancel deletes the caller's own pending request. A request that is absent
// or owned by another crew reads as not-found, so existence cannot be probed.
func (s *EditRequestService) Cancel(ctx context.Context, crewID, requestID string) error {
	request, err := s.getOwned(ctx, crewID, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.EditRequestStatusPending {
		return apperrors.NewValidationError("only pending requests can be cancelled", nil)
	}
	if err := s.requests.Delete(ctx, requestID); err != nil {
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventEditRequestCancelled, request, domain.RoleCrew, crewID)
	return nil
}

// Approve applies the proposed changes to the crew and marks the request.
func (s *EditRequestService) Approve(ctx context.Context, requestID string) (*domain.EditRequest, error) {
	request, err := s.getPending(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var changes domain.CrewChanges
	if err := json.Unmarshal(request.Changes, &changes); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	crew, err := s.crews.GetByID(ctx, request.CrewID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	fields := applyChanges(crew, changes)
	if err := s.crews.Update(ctx, crew); err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.requests.UpdateStatus(ctx, requestID, domain.EditRequestStatusApproved); err != nil {
		return nil, apperrors.MapError(err)
	}
	request.Status = domain.EditRequestStatusApproved
	now := time.Now()
	request.DecidedAt = &now

	s.publish(ctx, events.EventEditRequestApproved, request, domain.RoleAdmin, "admin")
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventCrewUpdated,
			CrewID:    crew.ID,
			Actor:     events.Actor{Role: domain.RoleAdmin, SubjectID: "admin"},
			Timestamp: now,
			Payload:   events.CrewUpdatedPayload{Fields: fields},
		})
	}
	return request, nil
}

// Reject marks a pending request rejected without touching the crew.
func (s *EditRequestService) Reject(ctx context.Context, requestID string) (*domain.EditRequest, error) {
	request, err := s.getPending(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.requests.UpdateStatus(ctx, requestID, domain.EditRequestStatusRejected); err != nil {
		return nil, apperrors.MapError(err)
	}
	request.Status = domain.EditRequestStatusRejected
	now := time.Now()
	request.DecidedAt = &now

	s.publish(ctx, events.EventEditRequestRejected, request, domain.RoleAdmin, "admin")
	return request, nil
}

func (s *EditRequestService) getOwned(ctx context.Context, crewID, requestID string) (*domain.EditRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("edit request", nil)
		}
		return nil, apperrors.NewUpstreamFailure(err)
	}
	if request.CrewID != crewID {
		return nil, apperrors.NewNotFound("edit request", nil)
	}
	return request, nil
}

func (s *EditRequestService) getPending(ctx context.Context, requestID string) (*domain.EditRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("edit request", nil)
		}
		return nil, apperrors.NewUpstreamFailure(err)
	}
	if request.Status != domain.EditRequestStatusPending {
		return nil, apperrors.NewValidationError("request already decided", nil)
	}
	return request, nil
}

func (s *EditRequestService) publish(ctx context.Context, eventType events.EventType, request *domain.EditRequest, role domain.Role, subjectID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		CrewID:    request.CrewID,
		Actor:     events.Actor{Role: role, SubjectID: subjectID},
		Timestamp: time.Now(),
		Payload:   events.EditRequestPayload{RequestID: request.ID, Status: request.Status},
	})
}

func applyChanges(crew *domain.Crew, changes domain.CrewChanges) []string {
	var fields []string
	if changes.Name != nil {
		crew.Name = *changes.Name
		fields = append(fields, "name")
	}
	if changes.Description != nil {
		crew.Description = *changes.Description
		fields = append(fields, "description")
	}
	if changes.Instagram != nil {
		crew.Instagram = *changes.Instagram
		fields = append(fields, "instagram")
	}
	if changes.LogoURL != nil {
		crew.LogoURL = *changes.LogoURL
		fields = append(fields, "logo_url")
	}
	return fields
}
