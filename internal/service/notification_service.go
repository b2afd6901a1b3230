package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/runcrewhq/crew-directory/internal/config"
	"github.com/runcrewhq/crew-directory/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotifyConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotifyConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEditRequestSubmitted, n.handleEditRequestEvent)
	n.dispatcher.Subscribe(events.EventEditRequestCancelled, n.handleEditRequestEvent)
	n.dispatcher.Subscribe(events.EventEditRequestApproved, n.handleEditRequestEvent)
	n.dispatcher.Subscribe(events.EventEditRequestRejected, n.handleEditRequestEvent)
	n.dispatcher.Subscribe(events.EventCrewUpdated, n.handleCrewUpdated)
}

func (n *NotificationService) handleEditRequestEvent(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type), zap.String("crew_id", event.CrewID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleCrewUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("CrewUpdated", zap.String("crew_id", event.CrewID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("crew_id", event.CrewID),
		zap.String("event_type", string(event.Type)))
}
