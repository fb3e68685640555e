// Package events handles event emission for workspace state changes
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"

	"github.com/pathwise/compass/pkg/kafka"
	"github.com/pathwise/compass/pkg/models"
	"github.com/pathwise/compass/pkg/tracing"
)

// Event types emitted by the service
const (
	EventGDPRItemCreated     = "gdpr_item.created"
	EventGDPRItemUpdated     = "gdpr_item.updated"
	EventGDPRItemDeleted     = "gdpr_item.deleted"
	EventRoadmapItemCreated  = "roadmap_item.created"
	EventRoadmapItemUpdated  = "roadmap_item.updated"
	EventRoadmapItemDeleted  = "roadmap_item.deleted"
	EventNotificationCreated = "notification.created"
	EventPreferenceUpdated   = "preference.updated"
	EventAssessmentSubmitted = "assessment.submitted"
	EventAssessmentScored    = "assessment.scored"
)

// Emitter publishes workspace state events
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

func (e *Emitter) emit(ctx context.Context, eventType, userID, entityID, entityType string, payload any) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.emit")
	defer span.End()

	var data json.RawMessage
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			e.logger.WithContext(ctx).WithError(err).Errorf("Failed to encode %s payload", eventType)
			return err
		}
		data = encoded
	}

	event := &kafka.StateEvent{
		EventType:  eventType,
		UserID:     userID,
		EntityID:   entityID,
		EntityType: entityType,
		Payload:    data,
	}

	if err := e.producer.PublishStateEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).Errorf("Failed to emit %s event", eventType)
		return err
	}

	return nil
}

// EmitGDPRItemCreated emits a gdpr_item.created event
func (e *Emitter) EmitGDPRItemCreated(ctx context.Context, item *models.GDPRItem) error {
	return e.emit(ctx, EventGDPRItemCreated, item.UserID, item.ID, "gdpr_item", item)
}

// EmitGDPRItemUpdated emits a gdpr_item.updated event
func (e *Emitter) EmitGDPRItemUpdated(ctx context.Context, item *models.GDPRItem) error {
	return e.emit(ctx, EventGDPRItemUpdated, item.UserID, item.ID, "gdpr_item", item)
}

// EmitGDPRItemDeleted emits a gdpr_item.deleted event
func (e *Emitter) EmitGDPRItemDeleted(ctx context.Context, userID, itemID string) error {
	return e.emit(ctx, EventGDPRItemDeleted, userID, itemID, "gdpr_item", nil)
}

// EmitRoadmapItemCreated emits a roadmap_item.created event
func (e *Emitter) EmitRoadmapItemCreated(ctx context.Context, item *models.RoadmapItem) error {
	return e.emit(ctx, EventRoadmapItemCreated, item.UserID, item.ID, "roadmap_item", item)
}

// EmitRoadmapItemUpdated emits a roadmap_item.updated event
func (e *Emitter) EmitRoadmapItemUpdated(ctx context.Context, item *models.RoadmapItem) error {
	return e.emit(ctx, EventRoadmapItemUpdated, item.UserID, item.ID, "roadmap_item", item)
}

// EmitRoadmapItemDeleted emits a roadmap_item.deleted event
func (e *Emitter) EmitRoadmapItemDeleted(ctx context.Context, userID, itemID string) error {
	return e.emit(ctx, EventRoadmapItemDeleted, userID, itemID, "roadmap_item", nil)
}

// EmitNotificationCreated emits a notification.created event
func (e *Emitter) EmitNotificationCreated(ctx context.Context, notification *models.Notification) error {
	return e.emit(ctx, EventNotificationCreated, notification.UserID, notification.ID, "notification", notification)
}

// EmitPreferenceUpdated emits a preference.updated event
func (e *Emitter) EmitPreferenceUpdated(ctx context.Context, preference *models.Preference) error {
	return e.emit(ctx, EventPreferenceUpdated, preference.UserID, preference.ID, "preference", preference)
}

// EmitAssessmentSubmitted emits an assessment.submitted event
func (e *Emitter) EmitAssessmentSubmitted(ctx context.Context, submission *models.Assessment) error {
	return e.emit(ctx, EventAssessmentSubmitted, submission.UserID, submission.ID, "assessment", submission)
}

// EmitAssessmentScored emits an assessment.scored event
func (e *Emitter) EmitAssessmentScored(ctx context.Context, submission *models.Assessment) error {
	return e.emit(ctx, EventAssessmentScored, submission.UserID, submission.ID, "assessment", submission)
}
