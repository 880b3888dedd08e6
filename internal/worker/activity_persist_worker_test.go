package worker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/model"
)

func validEvent() model.ActivityEvent {
	return model.ActivityEvent{
		UserID:     7,
		TripID:     42,
		Action:     model.ActionTripCreated,
		OccurredAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func mustMarshal(t *testing.T, event model.ActivityEvent) []byte {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestDecodeEvent(t *testing.T) {
	event, err := decodeEvent(mustMarshal(t, validEvent()))

	require.NoError(t, err)
	assert.Equal(t, uint(7), event.UserID)
	assert.Equal(t, uint(42), event.TripID)
	assert.Equal(t, model.ActionTripCreated, event.Action)
}

func TestDecodeEvent_RejectsBadPayloads(t *testing.T) {
	cases := map[string]func(*model.ActivityEvent){
		"zero user":      func(e *model.ActivityEvent) { e.UserID = 0 },
		"zero trip":      func(e *model.ActivityEvent) { e.TripID = 0 },
		"zero timestamp": func(e *model.ActivityEvent) { e.OccurredAt = time.Time{} },
		"unknown action": func(e *model.ActivityEvent) { e.Action = "trip.archived" },
		"empty action":   func(e *model.ActivityEvent) { e.Action = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			event := validEvent()
			mutate(&event)

			decoded, err := decodeEvent(mustMarshal(t, event))
			assert.Error(t, err)
			assert.Nil(t, decoded)
		})
	}
}

func TestDecodeEvent_RejectsMalformedJSON(t *testing.T) {
	decoded, err := decodeEvent([]byte(`{"user_id": "not-a-number"`))

	assert.Error(t, err)
	assert.Nil(t, decoded)
}

func TestEventKey_DistinguishesMutations(t *testing.T) {
	first := validEvent()
	redelivered := validEvent()
	assert.Equal(t, eventKey(&first), eventKey(&redelivered))

	later := validEvent()
	later.OccurredAt = later.OccurredAt.Add(time.Second)
	assert.NotEqual(t, eventKey(&first), eventKey(&later))

	deleted := validEvent()
	deleted.Action = model.ActionTripDeleted
	assert.NotEqual(t, eventKey(&first), eventKey(&deleted))

	otherTrip := validEvent()
	otherTrip.TripID = 43
	assert.NotEqual(t, eventKey(&first), eventKey(&otherTrip))
}
