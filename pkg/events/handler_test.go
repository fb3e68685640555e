package events

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/compass/pkg/database"
	"github.com/pathwise/compass/pkg/kafka"
	"github.com/pathwise/compass/pkg/models"
)

type fakeAssessmentStore struct {
	submission *models.Assessment
	getErr     error
	setScores  *models.AssessmentScores
}

func (f *fakeAssessmentStore) Get(ctx context.Context, userID string, id string) (*models.Assessment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.submission, nil
}

func (f *fakeAssessmentStore) SetScores(ctx context.Context, userID string, id string, scores models.AssessmentScores) (*models.Assessment, error) {
	f.setScores = &scores
	scored := *f.submission
	scored.Scores = database.NewJSONB(scores)
	scored.Status = models.AssessmentStatusScored
	return &scored, nil
}

type fakeNotificationStore struct {
	created *models.CreateNotificationRequest
}

func (f *fakeNotificationStore) Create(ctx context.Context, userID string, req models.CreateNotificationRequest) (*models.Notification, error) {
	f.created = &req
	return &models.Notification{ID: "notification-1", UserID: userID, Type: req.Type, Title: req.Title, Body: req.Body}, nil
}

type fakeStateEmitter struct {
	scoredEvents       int
	notificationEvents int
}

func (f *fakeStateEmitter) EmitAssessmentScored(ctx context.Context, submission *models.Assessment) error {
	f.scoredEvents++
	return nil
}

func (f *fakeStateEmitter) EmitNotificationCreated(ctx context.Context, notification *models.Notification) error {
	f.notificationEvents++
	return nil
}

func noopLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {})
}

func completeAnswers() map[string]string {
	answers := make(map[string]string)
	for _, q := range []string{
		"strategy_vision", "strategy_sponsorship",
		"data_quality", "data_governance",
		"talent_skills", "talent_training",
		"governance_review", "governance_compliance",
		"technology_platform", "technology_integration",
	} {
		answers[q] = "operational"
	}
	return answers
}

func submittedEvent(userID, entityID string) *kafka.IncomingMessage {
	return &kafka.IncomingMessage{
		Event: &kafka.StateEvent{
			EventType:  EventAssessmentSubmitted,
			UserID:     userID,
			EntityID:   entityID,
			EntityType: "assessment",
		},
	}
}

func TestHandleScoresUnscoredSubmission(t *testing.T) {
	assessments := &fakeAssessmentStore{
		submission: &models.Assessment{
			ID:      "assessment-1",
			UserID:  "user-1",
			Answers: database.NewJSONB(completeAnswers()),
			Status:  models.AssessmentStatusSubmitted,
		},
	}
	emitter := &fakeStateEmitter{}
	handler := NewHandler(assessments, &fakeNotificationStore{}, emitter, noopLogger())

	err := handler.Handle(context.Background(), submittedEvent("user-1", "assessment-1"))
	require.NoError(t, err)

	require.NotNil(t, assessments.setScores, "unscored submission should be scored")
	assert.InDelta(t, 75.0, assessments.setScores.Overall, 1e-9)
	assert.Equal(t, "Leading", assessments.setScores.Band)
	assert.Equal(t, 1, emitter.scoredEvents)
}

func TestHandleSkipsSubmittedEvents(t *testing.T) {
	tests := []struct {
		name       string
		submission *models.Assessment
		getErr     error
	}{
		{
			name: "already scored",
			submission: &models.Assessment{
				ID:      "assessment-1",
				UserID:  "user-1",
				Answers: database.NewJSONB(completeAnswers()),
				Status:  models.AssessmentStatusScored,
			},
		},
		{
			name:   "deleted before processing",
			getErr: httperror.NewHTTPError(http.StatusNotFound, "assessment assessment-1 not found"),
		},
		{
			name: "unscorable answers",
			submission: &models.Assessment{
				ID:      "assessment-1",
				UserID:  "user-1",
				Answers: database.NewJSONB(map[string]string{"strategy_vision": "operational"}),
				Status:  models.AssessmentStatusSubmitted,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessments := &fakeAssessmentStore{submission: tt.submission, getErr: tt.getErr}
			emitter := &fakeStateEmitter{}
			handler := NewHandler(assessments, &fakeNotificationStore{}, emitter, noopLogger())

			err := handler.Handle(context.Background(), submittedEvent("user-1", "assessment-1"))
			require.NoError(t, err, "skips must commit, not retry")
			assert.Nil(t, assessments.setScores)
			assert.Zero(t, emitter.scoredEvents)
		})
	}
}

func TestHandleScoredCreatesNotification(t *testing.T) {
	submission := models.Assessment{
		ID:     "assessment-1",
		UserID: "user-1",
		Scores: database.NewJSONB(models.AssessmentScores{Overall: 62, Band: "Established"}),
		Status: models.AssessmentStatusScored,
	}
	payload, err := json.Marshal(submission)
	require.NoError(t, err)

	notifications := &fakeNotificationStore{}
	emitter := &fakeStateEmitter{}
	handler := NewHandler(&fakeAssessmentStore{}, notifications, emitter, noopLogger())

	err = handler.Handle(context.Background(), &kafka.IncomingMessage{
		Event: &kafka.StateEvent{
			EventType:  EventAssessmentScored,
			UserID:     "user-1",
			EntityID:   "assessment-1",
			EntityType: "assessment",
			Payload:    payload,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, notifications.created)
	assert.Equal(t, "assessment_scored", notifications.created.Type)
	assert.Equal(t, "Your readiness report is ready", notifications.created.Title)
	assert.Contains(t, notifications.created.Body, "62 out of 100")
	assert.Contains(t, notifications.created.Body, "Established")
	assert.Equal(t, 1, emitter.notificationEvents)
}

func TestHandleScoredMalformedPayload(t *testing.T) {
	notifications := &fakeNotificationStore{}
	handler := NewHandler(&fakeAssessmentStore{}, notifications, &fakeStateEmitter{}, noopLogger())

	err := handler.Handle(context.Background(), &kafka.IncomingMessage{
		Event: &kafka.StateEvent{
			EventType: EventAssessmentScored,
			UserID:    "user-1",
			EntityID:  "assessment-1",
			Payload:   json.RawMessage(`not json`),
		},
	})
	require.NoError(t, err, "malformed payloads must commit, not retry")
	assert.Nil(t, notifications.created)
}

func TestHandleIgnoresOtherEvents(t *testing.T) {
	assessments := &fakeAssessmentStore{}
	notifications := &fakeNotificationStore{}
	handler := NewHandler(assessments, notifications, &fakeStateEmitter{}, noopLogger())

	err := handler.Handle(context.Background(), &kafka.IncomingMessage{
		Event: &kafka.StateEvent{EventType: EventGDPRItemCreated, UserID: "user-1", EntityID: "item-1"},
	})
	require.NoError(t, err)
	assert.Nil(t, assessments.setScores)
	assert.Nil(t, notifications.created)

	require.NoError(t, handler.Handle(context.Background(), &kafka.IncomingMessage{}))
}
