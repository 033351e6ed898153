package contract

import (
	"context"

	"student-guide-be/internal/entity"

	"github.com/google/uuid"
)

type KnowledgeRepository interface {
	Create(ctx context.Context, snippet *entity.KnowledgeSnippet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAllByIntentId(ctx context.Context, intentId string) ([]*entity.KnowledgeSnippet, error)
}
