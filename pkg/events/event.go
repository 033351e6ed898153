package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CONVERSATION_ANSWERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// ConversationAnswered is published after every answered turn for external
// analytics (intent distribution, method mix, confidence bands).
func ConversationAnswered(sessionId, intentId, method string, confidence float64) Event {
	return BaseEvent{
		Type: "CONVERSATION_ANSWERED",
		Data: map[string]interface{}{
			"session_id": sessionId,
			"intent_id":  intentId,
			"method":     method,
			"confidence": confidence,
		},
		OccurredAt: time.Now(),
	}
}
