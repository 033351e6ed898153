package mapper

import (
	"student-guide-be/internal/entity"
	"student-guide-be/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(in *model.KnowledgeSnippet) *entity.KnowledgeSnippet {
	return &entity.KnowledgeSnippet{
		Id:        in.Id,
		IntentId:  in.IntentId,
		Content:   in.Content,
		CreatedAt: in.CreatedAt,
	}
}

func (m *KnowledgeMapper) ToModel(in *entity.KnowledgeSnippet) *model.KnowledgeSnippet {
	return &model.KnowledgeSnippet{
		Id:        in.Id,
		IntentId:  in.IntentId,
		Content:   in.Content,
		CreatedAt: in.CreatedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(models []*model.KnowledgeSnippet) []*entity.KnowledgeSnippet {
	entities := make([]*entity.KnowledgeSnippet, len(models))
	for i, mdl := range models {
		entities[i] = m.ToEntity(mdl)
	}
	return entities
}
