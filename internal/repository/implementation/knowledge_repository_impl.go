package implementation

import (
	"context"

	"student-guide-be/internal/entity"
	"student-guide-be/internal/mapper"
	"student-guide-be/internal/model"
	"student-guide-be/internal/repository/contract"
	"student-guide-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeRepositoryImpl) Create(ctx context.Context, snippet *entity.KnowledgeSnippet) error {
	m := r.mapper.ToModel(snippet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*snippet = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeSnippet{}, "id = ?", id).Error
}

func (r *KnowledgeRepositoryImpl) FindAllByIntentId(ctx context.Context, intentId string) ([]*entity.KnowledgeSnippet, error) {
	var models []*model.KnowledgeSnippet
	query := specification.ByIntentId{IntentId: intentId}.Apply(r.db.WithContext(ctx))
	query = specification.OrderBy{Field: "created_at"}.Apply(query)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
