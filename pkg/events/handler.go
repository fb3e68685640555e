package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/pathwise/compass/pkg/assessment"
	"github.com/pathwise/compass/pkg/kafka"
	"github.com/pathwise/compass/pkg/models"
)

// AssessmentStore is the subset of the assessment repository the
// handler reads and writes
type AssessmentStore interface {
	Get(ctx context.Context, userID string, id string) (*models.Assessment, error)
	SetScores(ctx context.Context, userID string, id string, scores models.AssessmentScores) (*models.Assessment, error)
}

// NotificationStore creates in-app notifications
type NotificationStore interface {
	Create(ctx context.Context, userID string, req models.CreateNotificationRequest) (*models.Notification, error)
}

// StateEmitter publishes the follow-up events the handler produces
type StateEmitter interface {
	EmitAssessmentScored(ctx context.Context, submission *models.Assessment) error
	EmitNotificationCreated(ctx context.Context, notification *models.Notification) error
}

// Handler reacts to consumed state events. It scores any submission that
// reached the topic unscored and turns scored assessments into in-app
// notifications.
type Handler struct {
	assessments   AssessmentStore
	notifications NotificationStore
	emitter       StateEmitter
	logger        ectologger.Logger
}

// NewHandler creates a new state event handler
func NewHandler(assessments AssessmentStore, notifications NotificationStore, emitter StateEmitter, logger ectologger.Logger) *Handler {
	return &Handler{
		assessments:   assessments,
		notifications: notifications,
		emitter:       emitter,
		logger:        logger,
	}
}

// Handle processes a single consumed message. Satisfies
// kafka.MessageHandler.
func (h *Handler) Handle(ctx context.Context, msg *kafka.IncomingMessage) error {
	event := msg.Event
	if event == nil {
		return nil
	}

	log := h.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type": event.EventType,
		"entity_id":  event.EntityID,
	})

	switch event.EventType {
	case EventAssessmentSubmitted:
		return h.handleAssessmentSubmitted(ctx, event)
	case EventAssessmentScored:
		return h.handleAssessmentScored(ctx, event)
	default:
		log.Debug("Ignoring event")
		return nil
	}
}

// handleAssessmentSubmitted scores submissions that are still unscored.
// Submissions are normally scored at submit time, so this only does work
// when that write was lost.
func (h *Handler) handleAssessmentSubmitted(ctx context.Context, event *kafka.StateEvent) error {
	submission, err := h.assessments.Get(ctx, event.UserID, event.EntityID)
	if err != nil {
		if httperror.GetStatusCode(err) == http.StatusNotFound {
			// deleted before the event was processed
			return nil
		}
		return err
	}
	if submission.Status == models.AssessmentStatusScored {
		return nil
	}

	scores, err := assessment.Score(assessment.DefaultQuestionnaire(), submission.Answers.GetValue())
	if err != nil {
		h.logger.WithContext(ctx).WithError(err).Error("Failed to score submitted assessment")
		// unscorable answers will not become scorable on retry
		return nil
	}

	scored, err := h.assessments.SetScores(ctx, event.UserID, event.EntityID, scores)
	if err != nil {
		return err
	}

	if h.emitter != nil {
		_ = h.emitter.EmitAssessmentScored(ctx, scored)
	}

	h.logger.WithContext(ctx).WithFields(map[string]any{
		"user_id":       event.UserID,
		"assessment_id": event.EntityID,
	}).Info("Scored assessment from consumer")
	return nil
}

func (h *Handler) handleAssessmentScored(ctx context.Context, event *kafka.StateEvent) error {
	var submission models.Assessment
	if err := json.Unmarshal(event.Payload, &submission); err != nil {
		h.logger.WithContext(ctx).WithError(err).Error("Failed to decode assessment payload")
		// malformed payloads are not retryable
		return nil
	}

	scores := submission.Scores.GetValue()
	created, err := h.notifications.Create(ctx, event.UserID, models.CreateNotificationRequest{
		Type:  "assessment_scored",
		Title: "Your readiness report is ready",
		Body:  fmt.Sprintf("You scored %.0f out of 100 (%s). View your report for recommended next steps.", scores.Overall, scores.Band),
	})
	if err != nil {
		return err
	}

	if h.emitter != nil {
		_ = h.emitter.EmitNotificationCreated(ctx, created)
	}

	h.logger.WithContext(ctx).WithFields(map[string]any{
		"user_id":       event.UserID,
		"assessment_id": event.EntityID,
	}).Info("Created assessment scored notification")
	return nil
}
