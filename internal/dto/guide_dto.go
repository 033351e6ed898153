package dto

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// AutoLearnMessage is the payload of the internal auto-learn event. The
// learner, not the publisher, decides which tokens are worth keeping.
type AutoLearnMessage struct {
	IntentId   string  `json:"intent_id"`
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence"`
}
