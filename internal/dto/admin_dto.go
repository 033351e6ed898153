package dto

import (
	"time"

	"github.com/google/uuid"
)

type SuggestIntentRequest struct {
	Knowledge string `json:"knowledge" validate:"required"`
}

type IntentSuggestionResponse struct {
	UseExistingIntent bool     `json:"useExistingIntent"`
	IntentId          string   `json:"intentId"`
	Label             string   `json:"label"`
	Keywords          []string `json:"keywords"`
}

type CreateIntentRequest struct {
	Id       string   `json:"id" validate:"required"`
	Label    string   `json:"label" validate:"required"`
	Keywords []string `json:"keywords"`
	Enabled  *bool    `json:"enabled"`
}

type UpdateIntentRequest struct {
	Id       string   `json:"-"`
	Label    string   `json:"label" validate:"required"`
	Keywords []string `json:"keywords"`
	Enabled  bool     `json:"enabled"`
}

type IntentResponse struct {
	Id        string     `json:"id"`
	Label     string     `json:"label"`
	Keywords  []string   `json:"keywords"`
	Enabled   bool       `json:"enabled"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreateKnowledgeRequest struct {
	IntentId string `json:"intent_id" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type KnowledgeResponse struct {
	Id        uuid.UUID `json:"id"`
	IntentId  string    `json:"intent_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
