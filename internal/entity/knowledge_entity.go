package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeSnippet is one curated factual passage tied to an intent. Many
// snippets may share an intent id; the intent itself may have been deleted
// since (resolution degrades to empty knowledge).
type KnowledgeSnippet struct {
	Id        uuid.UUID
	IntentId  string
	Content   string
	CreatedAt time.Time
}
