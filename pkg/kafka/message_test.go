package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateEvent(t *testing.T) {
	jsonData := `{
		"event_type": "assessment.scored",
		"user_id": "user-1",
		"entity_id": "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		"entity_type": "assessment",
		"payload": {"overall": 62.5, "band": "Established"},
		"timestamp": "2025-06-15T10:30:00Z"
	}`

	msg := &IncomingMessage{Value: []byte(jsonData)}
	require.NoError(t, msg.ParseStateEvent())
	require.NotNil(t, msg.Event)

	assert.Equal(t, "assessment.scored", msg.Event.EventType)
	assert.Equal(t, "user-1", msg.Event.UserID)
	assert.Equal(t, "a1b2c3d4-e5f6-7890-abcd-ef1234567890", msg.Event.EntityID)
	assert.Equal(t, "assessment", msg.Event.EntityType)
	assert.JSONEq(t, `{"overall": 62.5, "band": "Established"}`, string(msg.Event.Payload))
}

func TestParseStateEventMalformed(t *testing.T) {
	msg := &IncomingMessage{Value: []byte(`not json`)}
	assert.Error(t, msg.ParseStateEvent())
	assert.Nil(t, msg.Event)
}

func TestBuildMessage(t *testing.T) {
	p := &Producer{topic: "workspace-events"}

	event := &StateEvent{
		EventType:  "gdpr_item.created",
		UserID:     "user-1",
		EntityID:   "item-1",
		EntityType: "gdpr_item",
		Payload:    json.RawMessage(`{"requirement": "Data processing register"}`),
	}

	msg, err := p.buildMessage(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "workspace-events", msg.Topic)
	assert.Equal(t, "item-1", string(msg.Key))
	assert.False(t, event.Timestamp.IsZero(), "timestamp should be stamped on build")
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, time.Minute)

	headers := make(map[string]string)
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "gdpr_item.created", headers["event_type"])
	assert.Equal(t, "user-1", headers["user_id"])
	assert.Equal(t, "gdpr_item", headers["entity_type"])

	var decoded StateEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.EventType, decoded.EventType)
}
