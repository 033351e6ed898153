package model

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeSnippet struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	IntentId  string    `gorm:"type:text;not null;index"` // references intents.id, soft link
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KnowledgeSnippet) TableName() string {
	return "knowledge_snippets"
}
