package entity

import "time"

type Turn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// SessionState is the per-device conversation context, keyed by the caller's
// session id. Created on first message, appended to after answered turns,
// never destroyed here (expiry is the store's concern).
type SessionState struct {
	SessionId  string    `json:"session_id"`
	History    []Turn    `json:"history"`
	LastIntent string    `json:"last_intent,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
