package contract

import (
	"context"

	"student-guide-be/internal/entity"
	"student-guide-be/internal/repository/specification"
)

type IntentRepository interface {
	Create(ctx context.Context, intent *entity.Intent) error
	Update(ctx context.Context, intent *entity.Intent) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, id string) (*entity.Intent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Intent, error)

	// UnionKeywords merges the given normalized keywords into the intent's
	// existing set without duplicates. Used by auto-learning.
	UnionKeywords(ctx context.Context, id string, keywords []string) error
}
